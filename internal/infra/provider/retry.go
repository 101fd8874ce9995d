package provider

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Policy is an explicit retry policy handed to the adapter call site. No
// hidden control flow: the caller decides attempts, delay and which HTTP
// statuses are worth retrying.
type Policy struct {
	MaxAttempts     int
	BaseDelay       time.Duration
	RetryableStatus func(status int) bool
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		RetryableStatus: func(status int) bool {
			return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
		},
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, or attempts
// run out. Delay doubles per attempt.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := p.BaseDelay << (attempt - 1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !p.retryable(err) {
			return err
		}
	}
	return err
}

func (p Policy) retryable(err error) bool {
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	// Network-level failures carry no status and are always worth a retry.
	if ue.Status == 0 {
		return true
	}
	if p.RetryableStatus == nil {
		return false
	}
	return p.RetryableStatus(ue.Status)
}
