package jognote

import (
	"context"

	"github.com/kyoshidajp/jognote/internal/daterange"
	"github.com/kyoshidajp/jognote/internal/domain"
)

// Export runs the full pipeline over the planned months: login if needed,
// crawl each month index, parse every referenced day, and return all records
// sorted ascending by date. Any failure aborts the run; partial results are
// discarded, matching the no-partial-export contract.
func (c *Client) Export(ctx context.Context, months []daterange.Month) ([]domain.Workout, error) {
	if c.session == nil {
		if _, err := c.Login(ctx); err != nil {
			return nil, err
		}
	}

	var records []domain.Workout
	for _, month := range months {
		ids, err := c.CrawlMonth(ctx, month)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			_, dayRecords, err := c.ParseDay(ctx, id)
			if err != nil {
				return nil, err
			}
			records = append(records, dayRecords...)
		}
		c.debugf("%s done, %d records so far", month, len(records))
	}

	domain.SortByDate(records)
	return records, nil
}
