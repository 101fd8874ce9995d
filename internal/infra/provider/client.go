package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"fairway/internal/pkg/metrics"
	"fairway/internal/usecase/shared"
)

const maxResponseBytes = 4 << 20

// baseClient is the shared HTTP plumbing of every adapter: bounded body
// reads, audit recording, metrics, retry policy.
type baseClient struct {
	http     *http.Client
	provider string
	policy   Policy
	recorder Recorder
}

func newBaseClient(httpClient *http.Client, providerName string, policy Policy, recorder Recorder) baseClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return baseClient{
		http:     httpClient,
		provider: providerName,
		policy:   policy,
		recorder: recorder,
	}
}

// getJSON GETs url and decodes the body into out, retrying per policy. The
// raw body of the last attempt is returned for audit retention.
func (c *baseClient) getJSON(ctx context.Context, url, courseName string, headers map[string]string, out any) ([]byte, error) {
	return c.doJSON(ctx, http.MethodGet, url, courseName, headers, nil, out)
}

func (c *baseClient) postJSON(ctx context.Context, url, courseName string, headers map[string]string, payload any, out any) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, url, courseName, headers, payload, out)
}

func (c *baseClient) doJSON(ctx context.Context, method, url, courseName string, headers map[string]string, payload any, out any) ([]byte, error) {
	var raw []byte
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		body, err := c.attempt(ctx, method, url, courseName, headers, payload, out)
		raw = body
		return err
	})
	if err != nil {
		return raw, err
	}
	return raw, nil
}

func (c *baseClient) attempt(ctx context.Context, method, url, courseName string, headers map[string]string, payload any, out any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &UpstreamError{Provider: c.provider, Endpoint: url, Err: err}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &UpstreamError{Provider: c.provider, Endpoint: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	metrics.ProviderRequestDuration.WithLabelValues(c.provider).Observe(duration.Seconds())

	if err != nil {
		c.record(ctx, url, courseName, 0, duration, nil, err)
		metrics.ProviderRequests.WithLabelValues(c.provider, "error").Inc()
		return nil, &UpstreamError{Provider: c.provider, Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.record(ctx, url, courseName, resp.StatusCode, duration, nil, err)
		metrics.ProviderRequests.WithLabelValues(c.provider, "error").Inc()
		return nil, &UpstreamError{Provider: c.provider, Endpoint: url, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &UpstreamError{
			Provider: c.provider,
			Endpoint: url,
			Status:   resp.StatusCode,
			Err:      errUnexpectedStatus,
		}
		c.record(ctx, url, courseName, resp.StatusCode, duration, body, statusErr)
		metrics.ProviderRequests.WithLabelValues(c.provider, "error").Inc()
		return body, statusErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.record(ctx, url, courseName, resp.StatusCode, duration, body, err)
		metrics.ProviderRequests.WithLabelValues(c.provider, "error").Inc()
		return body, &UpstreamError{Provider: c.provider, Endpoint: url, Status: resp.StatusCode, Err: err}
	}

	c.record(ctx, url, courseName, resp.StatusCode, duration, body, nil)
	metrics.ProviderRequests.WithLabelValues(c.provider, "success").Inc()
	return body, nil
}

func (c *baseClient) record(ctx context.Context, endpoint, courseName string, status int, duration time.Duration, body []byte, callErr error) {
	entry := shared.RequestLogEntry{
		Provider: c.provider,
		Endpoint: endpoint,
		Course:   courseName,
		IsError:  callErr != nil,
		Response: body,
		At:       time.Now().UTC(),
	}
	if status > 0 {
		s := int32(status)
		entry.StatusCode = &s
	}
	ms := duration.Milliseconds()
	entry.DurationMS = &ms
	if callErr != nil {
		msg := callErr.Error()
		entry.Error = &msg
	}
	c.recorder.Record(ctx, entry)
}
