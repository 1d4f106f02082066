package agent

import (
	"context"

	"github.com/avisser/scout"
)

// DefaultAttempts is the query-level retry budget.
const DefaultAttempts = 2

// Runner retries whole loop runs. Each attempt starts from a fresh
// transcript; nothing carries over between attempts. There is no
// backoff: the failures worth retrying here are malformed model output
// and flaky transport, not rate limits.
type Runner struct {
	Loop *Loop
	// Attempts is the maximum number of runs per question.
	// Zero means DefaultAttempts.
	Attempts int
}

// Ask runs the loop up to Attempts times and returns the first
// successful answer or the last error. Permanent errors (validation,
// wiring) short-circuit: re-running an identical broken request only
// wastes model calls.
func (r *Runner) Ask(ctx context.Context, question string, opts ...RunOption) (scout.Answer, error) {
	attempts := r.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return scout.Answer{}, err
		}

		answer, err := r.Loop.Run(ctx, question, opts...)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if !scout.Transient(err) {
			break
		}
	}
	return scout.Answer{}, lastErr
}

// Answer is the degraded caller-facing surface: after exhausting
// retries it returns the last error's description as the answer text
// instead of failing. This keeps a conversation going at the cost of
// occasionally presenting an error as if it were an answer.
func (r *Runner) Answer(ctx context.Context, question string, opts ...RunOption) scout.Answer {
	answer, err := r.Ask(ctx, question, opts...)
	if err != nil {
		return scout.Answer{Text: err.Error()}
	}
	return answer
}
