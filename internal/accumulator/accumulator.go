// Package accumulator converts a cumulative on-chain "earned" counter sampled
// at irregular intervals into session totals and trailing-window reward rates.
package accumulator

import (
	"errors"
	"math"
	"math/big"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakepulse/stakepulse-backend/internal/model"
	"github.com/stakepulse/stakepulse-backend/pkg/format"
)

// ErrInvalidAmount is returned when a caller passes a nil or negative
// cumulative value. Out-of-contract input is a caller defect, not coerced.
var ErrInvalidAmount = errors.New("cumulative amount must be a non-negative integer")

const (
	defaultWindow = 5 * time.Minute
	displayPlaces = 4

	// warmupSamples spread the warm-up seed evenly across the window.
	warmupSamples = 5
)

// sample is the incremental amount gained between two consecutive polls,
// not the cumulative counter itself.
type sample struct {
	observedAt time.Time
	earned     *big.Int
}

// Accumulator tracks one wallet's reward counter for one process lifetime.
// Update and Stats are safe for concurrent use; the poll loop and the HTTP
// read path run on separate goroutines.
//
// All amounts stay *big.Int base units; decimal conversion happens only in
// Stats when building the display view.
type Accumulator struct {
	mx sync.Mutex

	window   time.Duration
	decimals int32
	now      func() time.Time

	sessionStart time.Time
	baseline     *big.Int // nil until the first sample or SetInitialAmount
	last         *big.Int
	history      []sample // ascending by observedAt, pruned to the window
}

// New builds an accumulator for a token with the given display decimals.
func New(decimals int32) *Accumulator {
	return &Accumulator{
		window:   defaultWindow,
		decimals: decimals,
		now:      time.Now,
	}
}

// Update feeds the latest observed cumulative earned counter, in base units.
//
// A decrease of the counter means a claim, unstake or contract-side reset; the
// session restarts and all window history is discarded. That loss of history
// is the intended policy, not an accident.
func (a *Accumulator) Update(current *big.Int) error {
	if current == nil || current.Sign() < 0 {
		return ErrInvalidAmount
	}

	a.mx.Lock()
	defer a.mx.Unlock()
	now := a.now()

	switch {
	case a.baseline == nil:
		a.rebase(now, current)
		a.history = append(a.history, sample{observedAt: now, earned: new(big.Int)})

	case current.Cmp(a.last) < 0:
		a.rebase(now, current)
		a.history = []sample{{observedAt: now, earned: new(big.Int)}}

	default:
		delta := new(big.Int).Sub(current, a.last)
		if delta.Sign() > 0 {
			a.history = append(a.history, sample{observedAt: now, earned: delta})
			a.last = new(big.Int).Set(current)
		} else if n := len(a.history); n > 0 {
			// flat counter: stretch the newest sample so its weight in the
			// window rate reflects the elapsed time
			a.history[n-1].observedAt = now
		} else {
			a.history = append(a.history, sample{observedAt: now, earned: new(big.Int)})
		}
	}

	a.prune(now)
	return nil
}

// SetInitialAmount sets the session baseline from an authoritative reading
// without recording a sample, as an explicit alternative to the implicit
// first-call behavior of Update.
func (a *Accumulator) SetInitialAmount(current *big.Int) error {
	if current == nil || current.Sign() < 0 {
		return ErrInvalidAmount
	}

	a.mx.Lock()
	defer a.mx.Unlock()
	a.rebase(a.now(), current)
	return nil
}

// Reset returns the accumulator to its uninitialized state.
func (a *Accumulator) Reset() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.sessionStart = time.Time{}
	a.baseline = nil
	a.last = nil
	a.history = nil
}

// Stats derives the current session view. It mutates nothing besides pruning
// stale history and, before the first sample, seeding a synthetic warm-up so
// the dashboard's early rate display is not zero.
func (a *Accumulator) Stats() model.RewardStats {
	a.mx.Lock()
	defer a.mx.Unlock()
	now := a.now()

	a.prune(now)
	if a.baseline == nil && len(a.history) == 0 {
		a.seedWarmup(now)
	}

	var elapsed time.Duration
	if a.baseline != nil {
		elapsed = now.Sub(a.sessionStart)
	}
	durationMinutes := math.Max(1, elapsed.Minutes())

	sessionTotalBase := new(big.Int)
	if a.baseline != nil {
		sessionTotalBase.Sub(a.last, a.baseline)
		if sessionTotalBase.Sign() < 0 {
			sessionTotalBase.SetInt64(0)
		}
	}

	windowTotalBase := new(big.Int)
	for _, s := range a.history {
		windowTotalBase.Add(windowTotalBase, s.earned)
	}

	sessionTotal := format.FromBaseUnits(sessionTotalBase, a.decimals)

	// The divisor is the fixed window length, not the span actually covered by
	// retained samples. Sessions younger than the window therefore show an
	// under-estimated rate; this matches the dashboard's historical behavior
	// and is kept on purpose.
	perMinute := format.FromBaseUnits(windowTotalBase, a.decimals).
		Div(decimal.NewFromFloat(a.window.Minutes()))
	perHour := perMinute.Mul(decimal.NewFromInt(60))
	perDay := perHour.Mul(decimal.NewFromInt(24))

	sessionPerMinute := decimal.Zero
	if ms := elapsed.Milliseconds(); ms > 0 {
		sessionPerMinute = sessionTotal.
			Mul(decimal.NewFromInt(60_000)).
			Div(decimal.NewFromInt(ms))
	}

	return model.RewardStats{
		SessionTotal:           sessionTotal,
		SessionDurationMinutes: durationMinutes,
		SessionPerMinute:       sessionPerMinute,
		CurrentRate: model.Rate{
			PerMinute: perMinute,
			PerHour:   perHour,
			PerDay:    perDay,
		},
		SessionTotalDisplay:     format.WithThousands(sessionTotal, displayPlaces),
		SessionPerMinuteDisplay: format.WithThousands(sessionPerMinute, displayPlaces),
		PerMinuteDisplay:        format.WithThousands(perMinute, displayPlaces),
		PerHourDisplay:          format.WithThousands(perHour, displayPlaces),
		PerDayDisplay:           format.WithThousands(perDay, displayPlaces),
	}
}

func (a *Accumulator) rebase(now time.Time, current *big.Int) {
	a.sessionStart = now
	a.baseline = new(big.Int).Set(current)
	a.last = new(big.Int).Set(current)
}

func (a *Accumulator) prune(now time.Time) {
	cutoff := now.Add(-a.window)
	i := 0
	for i < len(a.history) && a.history[i].observedAt.Before(cutoff) {
		i++
	}
	if i > 0 {
		a.history = a.history[i:]
	}
}

// seedWarmup spreads a minimal fixed amount evenly across the trailing window
// so a freshly opened dashboard shows a plausible non-zero rate. Purely a
// display convenience; the seed never touches baseline or session totals.
func (a *Accumulator) seedWarmup(now time.Time) {
	seed := warmupSeedBaseUnits(a.decimals)
	part := new(big.Int).Div(seed, big.NewInt(warmupSamples))
	if part.Sign() == 0 {
		part = big.NewInt(1)
	}

	step := a.window / warmupSamples
	for i := warmupSamples; i >= 1; i-- {
		a.history = append(a.history, sample{
			observedAt: now.Add(-time.Duration(i-1) * step),
			earned:     new(big.Int).Set(part),
		})
	}
}

// warmupSeedBaseUnits is 0.0001 token, or one base unit for tokens with fewer
// than four decimals.
func warmupSeedBaseUnits(decimals int32) *big.Int {
	if decimals < 4 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals-4)), nil)
}
