package neis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"

	"github.com/idilsaglam/schoolmeal/internal/meal"
)

// DefaultBaseURL is the NEIS school meal endpoint.
const DefaultBaseURL = "https://open.neis.go.kr/hub/mealServiceDietInfo"

// Client looks up one day's meal.
type Client interface {
	Lookup(ctx context.Context, q meal.Query) (meal.Data, error)
}

type client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, httpClient *http.Client, logger *slog.Logger) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &client{baseURL: baseURL, http: httpClient, log: logger}
}

// TransportError covers everything between sending the request and having a
// parsed document: network failures, non-200 answers and unreadable XML.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("meal api: %v", e.Err)
	}
	if e.Err == nil {
		return fmt.Sprintf("meal api: status %d", e.Status)
	}
	return fmt.Sprintf("meal api: status %d: %v", e.Status, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BuildURL renders the GET url for q against base.
func BuildURL(base string, q meal.Query) string {
	return fmt.Sprintf("%s?ATPT_OFCDC_SC_CODE=%s&SD_SCHUL_CODE=%s&MLSV_YMD=%s",
		base,
		url.QueryEscape(q.OfficeCode),
		url.QueryEscape(q.SchoolCode),
		url.QueryEscape(q.Date),
	)
}

func (c *client) Lookup(ctx context.Context, q meal.Query) (meal.Data, error) {
	doc, err := c.fetch(ctx, q)
	if err != nil {
		return meal.Data{}, err
	}
	return meal.Parse(doc, q)
}

func (c *client) fetch(ctx context.Context, q meal.Query) (*xmlquery.Node, error) {
	u := BuildURL(c.baseURL, q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("meal request failed", "url", u, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	c.log.Debug("meal request", "url", u, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &TransportError{Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(b)))}
	}
	doc, err := xmlquery.Parse(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("parse xml: %w", err)}
	}
	return doc, nil
}
