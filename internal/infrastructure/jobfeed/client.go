package jobfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/domain/job"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 4 << 20

// Query is what a feed is asked for. Empty fields are not sent.
type Query struct {
	Keywords       string
	Location       string
	EmploymentType string
	Limit          int
}

// Feed serves postings already normalised to job.Posting. Provider-specific
// adapters live behind the feed endpoint, not here.
type Feed interface {
	Name() string
	Search(ctx context.Context, q Query) ([]job.Posting, error)
}

type httpFeed struct {
	name    string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

type searchResponse struct {
	Jobs []job.Posting `json:"jobs"`
}

func NewFeed(baseURL string, timeout time.Duration, rps float64, logger *log.Logger) Feed {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	name := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		name = u.Host
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &httpFeed{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		logger:  logger,
	}
}

// NewFeeds builds one feed per configured URL.
func NewFeeds(cfg config.JobFeedConfig, logger *log.Logger) []Feed {
	out := make([]Feed, 0, len(cfg.URLs))
	for _, u := range cfg.URLs {
		f := NewFeed(u, cfg.Timeout, cfg.RPS, logger)
		if f == nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (f *httpFeed) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (f *httpFeed) Search(ctx context.Context, q Query) ([]job.Posting, error) {
	if f == nil {
		return nil, errors.New("nil job feed")
	}
	if f.client == nil {
		return nil, errors.New("nil http client")
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	setIf := func(k, v string) {
		v = strings.TrimSpace(v)
		if v != "" {
			params.Set(k, v)
		}
	}
	setIf("q", q.Keywords)
	setIf("location", q.Location)
	setIf("type", q.EmploymentType)
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	endpoint := f.baseURL + "/jobs"
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if f.logger != nil {
			f.logger.Printf("[Feed] Search error feed=%s status=%d body=%q", f.name, resp.StatusCode, bodyStr)
		}
		return nil, fmt.Errorf("job feed %s failed: status=%d", f.name, resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("job feed %s: decode: %w", f.name, err)
	}

	postings := make([]job.Posting, 0, len(out.Jobs))
	for _, p := range out.Jobs {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		if p.ID == "" {
			p.ID = "feed-" + uuid.NewString()
		}
		if p.Source == "" {
			p.Source = f.name
		}
		postings = append(postings, p)
	}

	if f.logger != nil {
		f.logger.Printf("[Feed] Search ok feed=%s results=%d latency=%s", f.name, len(postings), time.Since(start))
	}
	return postings, nil
}

var _ Feed = (*httpFeed)(nil)
