package domain

import "time"

// CrawlResult holds the extracted content of a business website crawl.
// Content is markdown produced by the crawl provider; Metadata keeps the raw
// page metadata (og tags, language, status code) as returned by the provider.
type CrawlResult struct {
	// BusinessID is the business this crawl belongs to.
	BusinessID BusinessID `json:"businessId"`

	// URL is the normalized URL that was crawled.
	URL string `json:"url"`
	// Title is the page title.
	Title string `json:"title,omitempty"`
	// Description is the page meta description.
	Description string `json:"description,omitempty"`
	// Content is the page content converted to markdown.
	Content string `json:"content,omitempty"`
	// Metadata carries provider metadata keyed by field name.
	Metadata map[string]string `json:"metadata,omitempty"`

	// FetchedAt is when the page was fetched.
	FetchedAt time.Time `json:"fetchedAt"`
}
