// Package jognote implements the authenticated crawl of the JogNote service:
// session establishment, month traversal, day-page parsing and aggregation.
package jognote

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/kyoshidajp/jognote/internal/domain"
	"github.com/kyoshidajp/jognote/internal/observability"
)

// The origin serves a reduced page to unknown clients, so requests identify
// as a desktop browser.
const defaultUserAgent = "Mozilla/5.0 (Windows; U; Windows NT 5.1; rv:1.7.3) Gecko/20041001 Firefox/0.10.1"

// Session is the authenticated identity for one export run. It is owned by
// a single run and never shared.
type Session struct {
	UserID string
	// UserNum is the numeric account id resolved from the post-login
	// redirect; month and day URLs are addressed by it.
	UserNum string
	// Jar holds the cookies established during login. Every subsequent
	// request on the run goes out with it.
	Jar http.CookieJar
}

// Config carries the client tunables.
type Config struct {
	BaseURL        string
	UserID         string
	Password       string
	SleepInterval  time.Duration
	RequestTimeout time.Duration
	MaxRetries     uint64
}

// Option configures optional behaviour for the Client.
type Option func(*Client)

// WithLogger overrides the logger used to report progress.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithVerbose enables per-month and per-day debug lines.
func WithVerbose(verbose bool) Option {
	return func(c *Client) {
		c.verbose = verbose
	}
}

// WithSleep overrides the politeness sleep. Tests use it to avoid real
// delays while still observing them.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

// WithRetryInterval overrides the initial backoff interval between retries.
func WithRetryInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.retryInterval = interval
	}
}

// Client crawls the service sequentially: one request in flight, a fixed
// politeness sleep before each. It is not safe for concurrent use and is not
// meant to be; crawling the origin in parallel is exactly what the sleep is
// there to prevent.
type Client struct {
	http          *http.Client
	baseURL       string
	userID        string
	password      string
	sleepInterval time.Duration
	maxRetries    uint64
	retryInterval time.Duration
	userAgent     string
	userURLRe     *regexp.Regexp
	logger        *log.Logger
	verbose       bool
	sleep         func(time.Duration)
	session       *Session
}

// NewClient constructs a Client. The underlying transport persists cookies
// and follows redirects, which the login flow depends on.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is empty", domain.ErrConfig)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: cookie jar: %v", domain.ErrConfig, err)
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.RequestTimeout,
		},
		baseURL:       base,
		userID:        cfg.UserID,
		password:      cfg.Password,
		sleepInterval: cfg.SleepInterval,
		maxRetries:    cfg.MaxRetries,
		retryInterval: time.Second,
		userAgent:     defaultUserAgent,
		userURLRe:     regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `/users/(\d+)$`),
		logger:        log.New(log.Writer(), "[jognote] ", log.LstdFlags),
		sleep:         time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Session returns the authenticated session, or nil before Login succeeds.
func (c *Client) Session() *Session {
	return c.session
}

// Login submits the credentials to the login form and resolves the numeric
// account id from the redirect target. A redirect landing anywhere other
// than the user page means the credentials were rejected.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	if c.userID == "" || c.password == "" {
		return nil, fmt.Errorf("%w: userid and password are required", domain.ErrConfig)
	}

	c.sleep(c.sleepInterval)

	form := url.Values{
		"u[n]": {c.userID},
		"u[p]": {c.password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/top", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: login request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: login: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	match := c.userURLRe.FindStringSubmatch(final)
	if match == nil {
		return nil, fmt.Errorf("%w: login did not redirect to a user page, check userid and password", domain.ErrAuth)
	}
	observability.RecordPageFetched("login")

	c.session = &Session{
		UserID:  c.userID,
		UserNum: match[1],
		Jar:     c.http.Jar,
	}
	c.debugf("logged in as user %s", c.session.UserNum)
	return c.session, nil
}

func (c *Client) debugf(format string, args ...any) {
	if c.verbose {
		c.logger.Printf(format, args...)
	}
}
