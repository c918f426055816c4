package jognote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kyoshidajp/jognote/internal/domain"
	"github.com/kyoshidajp/jognote/internal/observability"
)

// fetch GETs one page, sleeping the politeness interval first. Transport
// errors and 5xx responses are retried with exponential backoff up to
// maxRetries; 4xx responses fail immediately.
func (c *Client) fetch(ctx context.Context, rawURL, page string) ([]byte, error) {
	c.sleep(c.sleepInterval)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)

	var body []byte
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("status %s", resp.Status)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			io.Copy(io.Discard, resp.Body)
			return backoff.Permanent(fmt.Errorf("status %s", resp.Status))
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	notify := func(err error, wait time.Duration) {
		observability.RecordFetchRetry(page)
		c.logger.Printf("retrying %s in %s: %v", rawURL, wait.Round(time.Millisecond), err)
	}

	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		observability.RecordFetchFailure(page)
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrFetch, rawURL, err)
	}
	observability.RecordPageFetched(page)
	return body, nil
}
