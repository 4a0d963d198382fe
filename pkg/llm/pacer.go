package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// pacer enforces a provider's requests-per-minute and tokens-per-minute
// budgets. Calls wait for capacity instead of failing, so quota pressure
// defers work rather than burning cascade attempts.
type pacer struct {
	rpm *rate.Limiter
	tpm *rate.Limiter
}

// newPacer builds a pacer from per-minute budgets; zero disables a
// dimension.
func newPacer(requestsPerMinute, tokensPerMinute int) *pacer {
	p := &pacer{}
	if requestsPerMinute > 0 {
		p.rpm = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
	}
	if tokensPerMinute > 0 {
		p.tpm = rate.NewLimiter(rate.Limit(float64(tokensPerMinute)/60.0), tokensPerMinute)
	}
	return p
}

// wait blocks until one request slot and tokens worth of budget are
// available, or the context ends.
func (p *pacer) wait(ctx context.Context, tokens int) error {
	if p.rpm != nil {
		if err := p.rpm.Wait(ctx); err != nil {
			return err
		}
	}
	if p.tpm != nil {
		// A single oversized request may exceed the burst; clamp so it
		// drains the full budget instead of erroring.
		if burst := p.tpm.Burst(); tokens > burst {
			tokens = burst
		}
		if tokens > 0 {
			if err := p.tpm.WaitN(ctx, tokens); err != nil {
				return err
			}
		}
	}
	return nil
}
