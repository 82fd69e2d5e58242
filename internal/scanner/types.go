// Package scanner implements the read-only crawler-visibility checks and
// their aggregation into a single report.
package scanner

import (
	"context"
	"net/http"
	"time"
)

// Outcome classifies the result of a single check.
type Outcome string

// Check outcomes. Unknown means the underlying fetch failed, so no
// determination could be made; it is distinct from both pass and blocked.
const (
	OutcomePass    Outcome = "pass"
	OutcomeBlocked Outcome = "blocked"
	OutcomeWarning Outcome = "warning"
	OutcomeUnknown Outcome = "unknown"
)

// CheckResult carries the outcome of one check plus the human-readable status
// line shown to API consumers.
type CheckResult struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// FetchResult is the successful outcome of one outbound HTTP GET. A non-2xx
// status is still a successful fetch; the checks inspect whatever came back.
type FetchResult struct {
	Body       []byte
	StatusCode int
	Headers    http.Header
}

// Fetcher performs a single bounded-timeout HTTP GET. Any returned error is a
// fetch failure (DNS, refused, timeout, malformed response) and callers
// degrade the dependent check to OutcomeUnknown.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (FetchResult, error)
}

// Report is the aggregate result of one scan. It is built once per scan and
// never mutated; every field is populated even when the target site is
// entirely unreachable.
type Report struct {
	Target         string      `json:"target"`
	ScannedAt      time.Time   `json:"scanned_at"`
	RobotsTxt      CheckResult `json:"robots_txt"`
	MetaNoindex    CheckResult `json:"meta_noindex"`
	MetaNofollow   CheckResult `json:"meta_nofollow"`
	BotProtection  CheckResult `json:"bot_protection"`
	Sitemap        CheckResult `json:"sitemap_xml"`
	Schemas        []string    `json:"schemas"`
	MissingSchemas []string    `json:"missing_schemas"`
}
