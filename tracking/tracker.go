// Package tracking assembles a per-navigation visitor fingerprint and
// submits it as an analytics record. The pipeline is fire-and-forget:
// no collection failure may delay or break the navigation that triggered
// it, so geolocation and IP lookup are bounded and best-effort and every
// error collapses to a logged skip.
package tracking

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// GeoTimeout bounds the geolocation lookup. Denial or timeout resolves to
// "no coordinates", never an error surfaced to the caller.
const GeoTimeout = 5 * time.Second

// Unknown is recorded for device attributes the browser does not report.
const Unknown = "Unknown"

// Fingerprint is the bundle of attributes collected for one page visit.
type Fingerprint struct {
	SessionID      string   `json:"session_id"`
	Page           string   `json:"page"`
	PreviousPage   string   `json:"previous_page"`
	DeviceType     string   `json:"device_type"`
	ScreenWidth    int      `json:"screen_width"`
	ScreenHeight   int      `json:"screen_height"`
	ViewportWidth  int      `json:"viewport_width"`
	ViewportHeight int      `json:"viewport_height"`
	Language       string   `json:"language"`
	Timezone       string   `json:"timezone"`
	TimezoneOffset int      `json:"timezone_offset"`
	Referrer       string   `json:"referrer"`
	ConnectionType string   `json:"connection_type"`
	DeviceMemory   string   `json:"device_memory"`
	CPUCores       string   `json:"cpu_cores"`
	Platform       string   `json:"platform"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	IPAddress      *string  `json:"ip_address"`
}

// PageVisit is the navigation event handed to the collector, together
// with whatever the browser reported about the device.
type PageVisit struct {
	Page           string
	UserAgent      string
	Platform       string
	Language       string
	Timezone       string
	TimezoneOffset int
	Referrer       string
	ScreenWidth    int
	ScreenHeight   int
	ViewportWidth  int
	ViewportHeight int
	ConnectionType string
	DeviceMemory   string
	CPUCores       string
}

// GeoSource resolves the visitor's coordinates. Implementations must honor
// the context deadline.
type GeoSource interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// IPSource resolves the visitor's public IP address.
type IPSource interface {
	PublicIP(ctx context.Context) (string, error)
}

// Sink persists a completed fingerprint.
type Sink interface {
	Submit(ctx context.Context, fp Fingerprint) error
}

// Collector runs the visitor tracking pipeline for one browser session.
// The previous-page reference lives in memory only and resets with the
// collector, matching a session that does not survive a reload.
type Collector struct {
	Geo  GeoSource
	IP   IPSource
	Sink Sink

	mu        sync.Mutex
	sessionID string
	prevPage  string
}

// NewCollector creates a collector with a fresh session id.
func NewCollector(geo GeoSource, ip IPSource, sink Sink) *Collector {
	return &Collector{
		Geo:       geo,
		IP:        ip,
		Sink:      sink,
		sessionID: newSessionID(),
	}
}

// SessionID returns the session identifier generated for this collector.
func (c *Collector) SessionID() string {
	return c.sessionID
}

// Track assembles the fingerprint for one navigation and submits it.
// Geolocation and IP failures leave their fields null; a submit failure is
// logged and swallowed. Track never returns an error by design of the
// pipeline's contract: side effects only.
func (c *Collector) Track(ctx context.Context, visit PageVisit) {
	fp := c.collect(ctx, visit)
	if err := c.Sink.Submit(ctx, fp); err != nil {
		log.Printf("tracking: failed to submit visitor record: %v", err)
	}
}

func (c *Collector) collect(ctx context.Context, visit PageVisit) Fingerprint {
	c.mu.Lock()
	previous := c.prevPage
	c.prevPage = visit.Page
	c.mu.Unlock()

	fp := Fingerprint{
		SessionID:      c.sessionID,
		Page:           visit.Page,
		PreviousPage:   previous,
		DeviceType:     ClassifyDevice(visit.UserAgent),
		ScreenWidth:    visit.ScreenWidth,
		ScreenHeight:   visit.ScreenHeight,
		ViewportWidth:  visit.ViewportWidth,
		ViewportHeight: visit.ViewportHeight,
		Language:       orUnknown(visit.Language),
		Timezone:       orUnknown(visit.Timezone),
		TimezoneOffset: visit.TimezoneOffset,
		Referrer:       visit.Referrer,
		ConnectionType: orUnknown(visit.ConnectionType),
		DeviceMemory:   orUnknown(visit.DeviceMemory),
		CPUCores:       orUnknown(visit.CPUCores),
		Platform:       orUnknown(visit.Platform),
	}

	if c.Geo != nil {
		geoCtx, cancel := context.WithTimeout(ctx, GeoTimeout)
		if lat, lon, err := c.Geo.Locate(geoCtx); err == nil {
			fp.Latitude = &lat
			fp.Longitude = &lon
		} else {
			log.Printf("tracking: geolocation unavailable: %v", err)
		}
		cancel()
	}

	if c.IP != nil {
		if ip, err := c.IP.PublicIP(ctx); err == nil && ip != "" {
			fp.IPAddress = &ip
		} else if err != nil {
			log.Printf("tracking: IP lookup failed: %v", err)
		}
	}

	return fp
}

// ClassifyDevice buckets a user-agent string into Mobile, Tablet or
// Desktop using the same substring checks the frontend applies.
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "Tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "Mobile"
	default:
		return "Desktop"
	}
}

// CRUDSink posts fingerprints to the generic CRUD endpoint's
// visitor_tracking table.
type CRUDSink struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Submit posts one fingerprint row.
func (s *CRUDSink) Submit(ctx context.Context, fp Fingerprint) error {
	body, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("failed to encode visitor record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.BaseURL+"/api.php?table=visitor_tracking", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("visitor record rejected with status %d", resp.StatusCode)
	}
	return nil
}

// HTTPIPSource looks up the visitor's public IP from a third-party
// JSON service (default shape: {"ip": "..."}).
type HTTPIPSource struct {
	LookupURL  string
	HTTPClient *http.Client
}

// PublicIP fetches the public IP address.
func (s *HTTPIPSource) PublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.LookupURL, nil)
	if err != nil {
		return "", err
	}

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IP lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("IP lookup returned malformed body: %w", err)
	}
	return payload.IP, nil
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return Unknown
	}
	return v
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// Clock-based fallback keeps the pipeline alive if the RNG fails.
		return fmt.Sprintf("visit_%d", time.Now().UnixNano())
	}
	return "visit_" + hex.EncodeToString(buf)
}
