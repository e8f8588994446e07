// Package edgar talks to the SEC EDGAR endpoints: the company ticker map,
// the per-company submissions index, and the archived full-text filings.
package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/ratelimit"
	"golang.org/x/net/html/charset"
)

const (
	defaultArchiveURL = "https://www.sec.gov"
	defaultDataURL    = "https://data.sec.gov"

	// SEC fair-access policy allows ten requests per second; stay under it.
	requestsPerSecond = 9
)

// Client fetches from EDGAR with the required User-Agent, a shared rate
// limiter, and bounded retry on transient failures.
type Client struct {
	HTTPClient *http.Client
	// UserAgent must identify the caller with contact details per SEC policy.
	UserAgent string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// Cache, when set, serves previously downloaded filings from disk.
	Cache *FilingCache

	// ArchiveURL and DataURL default to the public SEC hosts; tests point
	// them at local servers.
	ArchiveURL string
	DataURL    string

	limiter     ratelimit.Limiter
	limiterOnce sync.Once
}

func (c *Client) archiveURL() string {
	if c.ArchiveURL != "" {
		return c.ArchiveURL
	}
	return defaultArchiveURL
}

func (c *Client) dataURL() string {
	if c.DataURL != "" {
		return c.DataURL
	}
	return defaultDataURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) wait() {
	c.limiterOnce.Do(func() {
		c.limiter = ratelimit.New(requestsPerSecond)
	})
	c.limiter.Take()
}

// get issues a rate-limited GET and retries server errors with exponential
// backoff. Bodies are decoded to UTF-8 from whatever charset the response
// declares; archived filings are frequently not UTF-8.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	var body []byte
	op := func() error {
		c.wait()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("new request: %w", err))
		}
		if c.UserAgent != "" {
			req.Header.Set("User-Agent", c.UserAgent)
		}
		resp, err := c.httpClient().Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status: %d", resp.StatusCode))
		}
		r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("charset reader: %w", err))
		}
		body, err = io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(attempts-1)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return body, nil
}

// LoadCIKMap downloads the SEC company ticker file and builds the
// name-to-CIK map.
func (c *Client) LoadCIKMap(ctx context.Context) (*CIKMap, error) {
	b, err := c.get(ctx, c.archiveURL()+"/files/company_tickers.json")
	if err != nil {
		return nil, fmt.Errorf("fetch company tickers: %w", err)
	}
	var rows map[string]tickerRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("decode company tickers: %w", err)
	}
	m := newCIKMap(rows)
	log.Debug().Int("companies", m.Len()).Msg("loaded CIK map")
	return m, nil
}

// RecentFilings lists the company's recent submissions whose form is in
// forms, in the order EDGAR reports them (newest first).
func (c *Client) RecentFilings(ctx context.Context, cik string, forms []string) ([]Filing, error) {
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.dataURL(), padCIK(cik))
	b, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch submissions for CIK %s: %w", cik, err)
	}
	var resp submissionsResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("decode submissions for CIK %s: %w", cik, err)
	}
	recent := resp.Filings.Recent
	wanted := make(map[string]bool, len(forms))
	for _, f := range forms {
		wanted[f] = true
	}
	var filings []Filing
	for i, form := range recent.Form {
		if !wanted[form] {
			continue
		}
		if i >= len(recent.AccessionNumber) || i >= len(recent.FilingDate) {
			break
		}
		filings = append(filings, Filing{
			Form:            form,
			AccessionNumber: recent.AccessionNumber[i],
			Date:            recent.FilingDate[i],
		})
	}
	return filings, nil
}

// FetchFiling downloads the full-text submission for one filing, consulting
// the on-disk cache first when configured. Cache errors fall through to the
// network.
func (c *Client) FetchFiling(ctx context.Context, cik string, f Filing) (string, error) {
	if c.Cache != nil {
		if body, err := c.Cache.Load(f.AccessionNumber); err == nil {
			log.Debug().Str("accession", f.AccessionNumber).Msg("filing served from cache")
			return string(body), nil
		}
	}
	url := fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s.txt",
		c.archiveURL(), cik, strings.ReplaceAll(f.AccessionNumber, "-", ""), f.AccessionNumber)
	b, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch filing %s: %w", f.AccessionNumber, err)
	}
	if c.Cache != nil {
		if err := c.Cache.Save(f.AccessionNumber, b); err != nil {
			log.Warn().Err(err).Str("accession", f.AccessionNumber).Msg("filing cache save failed")
		}
	}
	return string(b), nil
}
