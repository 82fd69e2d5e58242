package scanner

import (
	"net/http"
	"strings"
)

// Header fingerprints of common bot-protection layers.
const (
	headerCfRay      = "Cf-Ray"
	headerProtection = "X-Protection"
	headerServer     = "Server"
)

// protectionSignals reports whether the response headers carry a known
// bot-protection fingerprint: a Cloudflare cf-ray header, an x-protection
// header, or a Server value containing "cloudflare". Lookups are
// case-insensitive; presence of the header counts even with an empty value.
func protectionSignals(headers http.Header) bool {
	if headers == nil {
		return false
	}
	if len(headers.Values(headerCfRay)) > 0 || len(headers.Values(headerProtection)) > 0 {
		return true
	}
	return strings.Contains(strings.ToLower(headers.Get(headerServer)), "cloudflare")
}

func (s *Scanner) checkBotProtection(page FetchResult, pageErr error) CheckResult {
	if pageErr != nil {
		return CheckResult{Outcome: OutcomeUnknown, Message: "could not check bot protection headers"}
	}
	if protectionSignals(page.Headers) {
		return CheckResult{
			Outcome: OutcomeWarning,
			Message: "bot protection headers detected (" + s.cfg.CrawlerToken + " may be blocked)",
		}
	}
	return CheckResult{Outcome: OutcomePass, Message: "no obvious bot protection headers"}
}
