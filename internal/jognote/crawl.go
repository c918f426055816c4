package jognote

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kyoshidajp/jognote/internal/daterange"
	"github.com/kyoshidajp/jognote/internal/domain"
)

// Day detail links on a month index look like /days/12345. The id is opaque;
// it is only ever compared for equality, never ordered.
var dayLinkRe = regexp.MustCompile(`/days/(\d+)`)

// CrawlMonth fetches the month index and returns the day ids it references,
// deduplicated in first-seen order. A day linked several times on the index
// page is visited exactly once.
func (c *Client) CrawlMonth(ctx context.Context, month daterange.Month) ([]string, error) {
	if c.session == nil {
		return nil, fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}

	indexURL := fmt.Sprintf("%s/user/%s/days?month=%d&year=%d",
		c.baseURL, c.session.UserNum, int(month.Month), month.Year)
	body, err := c.fetch(ctx, indexURL, "month_index")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, match := range dayLinkRe.FindAllStringSubmatch(string(body), -1) {
		id := match[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	c.debugf("%s index has %d day pages", month, len(ids))
	return ids, nil
}
