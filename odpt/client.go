package odpt

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api-tokyochallenge.odpt.org/api/v4/odpt:StationTimetable"

// Client fetches station timetables from the ODPT API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

// NewClient creates an ODPT client. The timeout bounds the whole request;
// without it a stalled API call would freeze the board indefinitely.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
	}
}

// FetchTimetable queries the StationTimetable endpoint for one station and
// direction. Every failure mode resolves to an empty entry list; the refresh
// loop treats a failed fetch and a genuinely empty timetable identically.
func (c *Client) FetchTimetable(ctx context.Context, station, direction string) []TimetableEntry {
	log.Printf("querying ODPT API for %q trains for %q...", direction, station)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		log.Printf("odpt: building request: %v", err)
		return nil
	}
	q := req.URL.Query()
	q.Set("acl:consumerKey", c.apiKey)
	q.Set("odpt:station", "odpt.Station:"+station)
	q.Set("odpt:railDirection", "odpt.RailDirection:"+direction)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			log.Printf("odpt: request timed out: %v", err)
		} else {
			log.Printf("odpt: connection error: %v", err)
		}
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("odpt: HTTP %d - bad token or query", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("odpt: reading response: %v", err)
		return nil
	}

	var payload []StationTimetable
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("odpt: malformed response: %v", err)
		return nil
	}
	return ExtractTimetable(payload)
}
