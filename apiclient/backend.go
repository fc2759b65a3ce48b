package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// Options are the standard request options for an admin API call.
type Options struct {
	Method string
	Header http.Header
	Body   []byte
}

// Response is a backend-independent view of an admin API result. Callers
// never branch on which backend served the call.
type Response struct {
	OK     bool
	Status int
	body   []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	if len(r.body) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.body, v)
}

// Body returns the raw response bytes.
func (r *Response) Body() []byte {
	return r.body
}

// Client routes admin calls to the typed API when it is reachable and
// falls back to the generic CRUD endpoint otherwise. One probe decision is
// cached per preference window; each call makes at most one fallback
// attempt and enforces no timeout of its own.
type Client struct {
	NodeBaseURL string
	CRUDBaseURL string
	HTTPClient  *http.Client
	Store       PreferenceStore

	// Now is the clock used for preference freshness. Defaults to time.Now.
	Now func() time.Time
}

// NewClient creates a backend-selecting client over the two base URLs.
func NewClient(nodeBaseURL, crudBaseURL string, store PreferenceStore) *Client {
	return &Client{
		NodeBaseURL: nodeBaseURL,
		CRUDBaseURL: crudBaseURL,
		HTTPClient:  http.DefaultClient,
		Store:       store,
		Now:         time.Now,
	}
}

// Do performs an admin API call against whichever backend is reachable.
// A nil response with a non-nil error means every path failed; callers
// treat that as total backend unavailability.
func (c *Client) Do(ctx context.Context, path string, opts Options) (*Response, error) {
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}

	now := c.now()
	if pref, ok := c.Store.Preference(); ok && now.Sub(pref.TS) <= PreferenceTTL {
		switch pref.Backend {
		case BackendNode:
			if resp, err := c.doNode(ctx, path, opts); err == nil {
				return resp, nil
			}
			// Stale hint; fall through to probing.
		case BackendCRUD:
			return c.doCRUD(ctx, path, opts)
		}
	}

	backend := c.probe(ctx)
	if backend != "" {
		c.Store.SetPreference(Preference{Backend: backend, TS: now})
	}

	if backend == BackendNode {
		if resp, err := c.doNode(ctx, path, opts); err == nil {
			return resp, nil
		}
		log.Printf("apiclient: typed API call failed, falling back to CRUD endpoint: %s", path)
	}

	return c.doCRUD(ctx, path, opts)
}

// probe checks the typed API's ping first, then the CRUD endpoint's ping
// action. Returns "" when neither answers.
func (c *Client) probe(ctx context.Context) Backend {
	if c.pingOK(ctx, c.NodeBaseURL+"/api/ping") {
		return BackendNode
	}
	if c.pingOK(ctx, c.CRUDBaseURL+"/api.php?action=ping") {
		return BackendCRUD
	}
	return ""
}

func (c *Client) pingOK(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// doNode attempts the call against the typed API. A network error or a
// 5xx answer is reported as an error so the caller can fall back; 4xx
// answers are considered handled and returned as-is.
func (c *Client) doNode(ctx context.Context, path string, opts Options) (*Response, error) {
	resp, err := c.roundTrip(ctx, c.NodeBaseURL+path, opts)
	if err != nil {
		return nil, err
	}
	if resp.Status >= http.StatusInternalServerError {
		return nil, fmt.Errorf("typed API returned %d", resp.Status)
	}
	return resp, nil
}

// doCRUD translates the logical path into the CRUD endpoint's
// query-parameter form and performs the call.
func (c *Client) doCRUD(ctx context.Context, path string, opts Options) (*Response, error) {
	ref := ParseResource(path)

	switch ref.Resource {
	case "upload":
		return c.roundTrip(ctx, c.CRUDBaseURL+"/api.php?action=upload", opts)
	case "login":
		return c.roundTrip(ctx, c.CRUDBaseURL+"/api.php?action=admin_login", opts)
	case "chat-sessions":
		return c.chatSessions(ctx, ref, opts)
	case "chat":
		if ref.ID != "" {
			return c.chatBySession(ctx, ref, opts)
		}
	}

	target := c.CRUDBaseURL + "/api.php"
	if ref.Mapped {
		query := url.Values{"table": {ref.Table}}
		if ref.ID != "" {
			query.Set("id", ref.ID)
		}
		target += "?" + query.Encode()
	}
	return c.roundTrip(ctx, target, opts)
}

// chatSessions fetches every chat row and groups them into conversations
// client-side; the CRUD endpoint has no session concept of its own.
func (c *Client) chatSessions(ctx context.Context, ref ResourceRef, opts Options) (*Response, error) {
	rows, err := c.fetchChatRows(ctx, ref.Table)
	if err != nil {
		return nil, err
	}
	return synthesize(models.GroupChatSessions(rows))
}

// chatBySession fetches every chat row and filters to one session id.
func (c *Client) chatBySession(ctx context.Context, ref ResourceRef, opts Options) (*Response, error) {
	rows, err := c.fetchChatRows(ctx, ref.Table)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.ChatMessage, 0)
	for _, row := range rows {
		if row.SessionID == ref.ID {
			filtered = append(filtered, row)
		}
	}
	return synthesize(filtered)
}

func (c *Client) fetchChatRows(ctx context.Context, table string) ([]models.ChatMessage, error) {
	query := url.Values{"table": {table}}
	resp, err := c.roundTrip(ctx, c.CRUDBaseURL+"/api.php?"+query.Encode(), Options{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("chat fetch returned %d", resp.Status)
	}
	var rows []models.ChatMessage
	if err := resp.JSON(&rows); err != nil {
		return nil, fmt.Errorf("chat fetch returned malformed rows: %w", err)
	}
	return rows, nil
}

func synthesize(v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Response{OK: true, Status: http.StatusOK, body: body}, nil
}

func (c *Client) roundTrip(ctx context.Context, rawURL string, opts Options) (*Response, error) {
	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, rawURL, body)
	if err != nil {
		return nil, err
	}
	for key, values := range opts.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if len(opts.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		body:   payload,
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
