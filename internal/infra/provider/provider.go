// Package provider holds the upstream tee-sheet adapters. Each adapter is a
// thin request/response mapping that converges on NormalizedTeeTime; all
// upstream failures surface as *UpstreamError so the orchestrator can skip
// one course without aborting the cycle.
package provider

import (
	"context"
	"errors"
	"fmt"

	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
	"fairway/internal/usecase/shared"
)

type Adapter interface {
	Provider() string
	// Fetch returns the normalized tee sheet for one course on one date
	// (YYYY-MM-DD). An empty slice is a legitimate result and must not be
	// confused with an error.
	Fetch(ctx context.Context, c course.Course, date string) ([]teetime.NormalizedTeeTime, error)
}

// UpstreamError covers timeouts, non-2xx responses and malformed payloads
// from a provider.
var errUnexpectedStatus = errors.New("unexpected response status")

type UpstreamError struct {
	Provider string
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s upstream error (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// Recorder persists the provider request audit trail. Recording is
// best-effort; a failed write must never fail the scrape.
type Recorder interface {
	Record(ctx context.Context, entry shared.RequestLogEntry)
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, shared.RequestLogEntry) {}
