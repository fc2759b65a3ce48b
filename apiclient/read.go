package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoAPI is returned when no JSON API is available or a read failed.
// Storefront pages treat it as "render the built-in default content".
var ErrNoAPI = errors.New("no JSON API available")

// DefaultProbeTimeout bounds the single availability probe.
const DefaultProbeTimeout = 2 * time.Second

// ReadClient lets read-only storefront pages degrade gracefully when no
// dynamic backend is deployed. Availability is probed once per session;
// after a negative probe no further network requests are issued.
type ReadClient struct {
	BaseURL      string
	HTTPClient   *http.Client
	Store        AvailabilityStore
	ProbeTimeout time.Duration
}

// NewReadClient creates a read client over the given base URL.
func NewReadClient(baseURL string, store AvailabilityStore) *ReadClient {
	return &ReadClient{
		BaseURL:      baseURL,
		HTTPClient:   http.DefaultClient,
		Store:        store,
		ProbeTimeout: DefaultProbeTimeout,
	}
}

// Available reports whether a JSON API answered the session's one probe.
func (r *ReadClient) Available(ctx context.Context) bool {
	if available, cached := r.Store.Availability(); cached {
		return available
	}

	timeout := r.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	available := false
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, r.BaseURL+"/api/ping", nil)
	if err == nil {
		if resp, err := r.httpClient().Do(req); err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			available = resp.StatusCode == http.StatusOK
		}
	}

	r.Store.SetAvailability(available)
	return available
}

// FetchJSONIfAPI issues a GET and decodes the JSON body into v if, and
// only if, the session's availability probe succeeded and the response is
// an OK JSON document. Every failure mode collapses to ErrNoAPI.
func (r *ReadClient) FetchJSONIfAPI(ctx context.Context, path string, v interface{}) error {
	if !r.Available(ctx) {
		return ErrNoAPI
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+path, nil)
	if err != nil {
		return ErrNoAPI
	}
	resp, err := r.httpClient().Do(req)
	if err != nil {
		return ErrNoAPI
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrNoAPI
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "json") {
		return ErrNoAPI
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrNoAPI
	}
	if err := json.Unmarshal(body, v); err != nil {
		return ErrNoAPI
	}
	return nil
}

func (r *ReadClient) httpClient() *http.Client {
	if r.HTTPClient != nil {
		return r.HTTPClient
	}
	return http.DefaultClient
}
