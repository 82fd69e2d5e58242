package scanner

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Directive keywords checked in the robots meta tag.
const (
	DirectiveNoindex  = "noindex"
	DirectiveNofollow = "nofollow"
)

// metaDirective reports whether the first <meta name="robots"> element on the
// page carries the given directive keyword in its content attribute
// (lower-cased substring test). A missing tag or an empty content attribute
// is not a block signal.
func metaDirective(body []byte, directive string) bool {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return false
	}
	content, _ := doc.Find(`meta[name="robots"]`).First().Attr("content")
	return strings.Contains(strings.ToLower(content), directive)
}

func (s *Scanner) checkMetaDirective(page FetchResult, pageErr error, directive string) CheckResult {
	if pageErr != nil {
		return CheckResult{
			Outcome: OutcomeUnknown,
			Message: fmt.Sprintf("could not check for %q directive", directive),
		}
	}
	if metaDirective(page.Body, directive) {
		return CheckResult{
			Outcome: OutcomeBlocked,
			Message: fmt.Sprintf("%q directive found (may block %s)", directive, s.cfg.CrawlerToken),
		}
	}
	return CheckResult{
		Outcome: OutcomePass,
		Message: fmt.Sprintf("no %q directive", directive),
	}
}
