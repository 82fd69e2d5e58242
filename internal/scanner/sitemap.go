package scanner

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/antchfx/xmlquery"
)

// sitemapLocCount counts the <loc> entries in a sitemap document. It returns
// -1 when the body is not parseable XML so callers can omit the count.
func sitemapLocCount(body []byte) int {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return -1
	}
	return len(xmlquery.Find(doc, "//loc"))
}

func (s *Scanner) checkSitemap(ctx context.Context, target string) CheckResult {
	unknown := CheckResult{Outcome: OutcomeUnknown, Message: "could not check sitemap.xml"}

	sitemapURL, err := resolveOriginPath(target, "/sitemap.xml")
	if err != nil {
		return unknown
	}
	res, err := s.fetch(ctx, fetchKindSitemap, sitemapURL)
	if err != nil {
		return unknown
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return CheckResult{
			Outcome: OutcomeWarning,
			Message: fmt.Sprintf("sitemap.xml not found (status %d)", res.StatusCode),
		}
	}
	if count := sitemapLocCount(res.Body); count >= 0 {
		return CheckResult{
			Outcome: OutcomePass,
			Message: fmt.Sprintf("sitemap.xml found (%d URLs)", count),
		}
	}
	return CheckResult{Outcome: OutcomePass, Message: "sitemap.xml found"}
}
