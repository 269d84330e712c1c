// Package crawler defines interfaces and data types used to fetch and extract
// content from business websites through a backing crawl provider.
package crawler

import (
	"context"
	"time"

	"gemflush/pkg/domain"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// underlying crawl provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Client is the abstraction for website crawlers. Implementations fetch a page
// and return its extracted content together with the provider's rate-limit
// status.
//
//go:generate mockgen -package mockcrawler -source=interface.go -destination=mock/mockcrawler.go *
type Client interface {
	// Scrape fetches the given URL and returns the extracted content. The
	// returned rate-limit status reflects the provider's response headers and is
	// meaningful even when an error is returned.
	Scrape(ctx context.Context, url string) (*domain.CrawlResult, RateLimitStatus, error)
}
