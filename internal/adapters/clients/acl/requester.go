package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/platform/httpclient"
)

// identityHeader carries the caller's GitHub user id on every
// authenticated backend call.
const identityHeader = "X-GitHub-User-ID"

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, identity header injection, JSON marshaling,
// execution via httpclient.Client, response body cleanup on error,
// status code validation, error translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes an authenticated request against the configured base URL,
// attaching the caller's identity as the X-GitHub-User-ID header.
//
// It marshals reqBody to JSON (if non-nil), sends the request, validates the
// status code matches wantStatus, and decodes the response body into respBody
// (if non-nil). For DELETE-style calls where no response body is expected,
// pass nil for respBody.
//
// On non-matching status codes, the response is passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, id domain.Identity, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set(identityHeader, id.HeaderValue())
	return r.execute(req, wantStatus, respBody)
}

// DoPublic executes a request without an identity header. Used for the
// auth callback, which runs before a session exists.
func (r *Requester) DoPublic(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	return r.execute(req, wantStatus, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + path

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %v: %w", req.Method, req.URL.Path, err, domain.ErrUnavailable)
	}
	defer r.closeBody(req.Context(), resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
