package scanner

import (
	"bytes"
	"context"
	"fmt"
)

// DefaultCrawlerToken identifies the AI-content crawler whose presence in
// robots.txt is treated as a block signal.
const DefaultCrawlerToken = "GPTBot"

// robotsBlocked reports whether the crawler token appears anywhere in the raw
// robots.txt body. This is a case-sensitive substring test, deliberately not
// a conformant robots.txt parse: a token inside a comment, or inside a group
// scoped to a different user agent, still counts as blocked.
func robotsBlocked(body []byte, token string) bool {
	return token != "" && bytes.Contains(body, []byte(token))
}

func (s *Scanner) checkRobots(ctx context.Context, target string) CheckResult {
	unknown := CheckResult{Outcome: OutcomeUnknown, Message: "could not check robots.txt"}

	robotsURL, err := resolveOriginPath(target, "/robots.txt")
	if err != nil {
		return unknown
	}
	res, err := s.fetch(ctx, fetchKindRobots, robotsURL)
	if err != nil {
		return unknown
	}
	token := s.cfg.CrawlerToken
	if robotsBlocked(res.Body, token) {
		return CheckResult{
			Outcome: OutcomeBlocked,
			Message: fmt.Sprintf("%s is blocked in robots.txt", token),
		}
	}
	return CheckResult{
		Outcome: OutcomePass,
		Message: fmt.Sprintf("%s is not blocked in robots.txt", token),
	}
}
