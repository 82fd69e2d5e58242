package scanner

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/aiseoaudit/visibility-scanner/internal/telemetry"
)

// Outbound fetch kinds, used as telemetry labels.
const (
	fetchKindPage    = "page"
	fetchKindRobots  = "robots"
	fetchKindSitemap = "sitemap"
)

// Config fixes the inputs a scan depends on besides the target URL.
type Config struct {
	// CrawlerToken is the user-agent token searched for in robots.txt.
	CrawlerToken string
	// ExpectedSchemas is the reference list of JSON-LD types; its order is
	// preserved in the missing_schemas output.
	ExpectedSchemas []string
}

// Scanner runs visibility scans. It holds no per-scan state, so a single
// Scanner is safe for concurrent use; every scan is a pure function of the
// target URL and the fixed config.
type Scanner struct {
	fetcher Fetcher
	cfg     Config
	logger  *zap.Logger
}

// New builds a Scanner, filling zero config values with the defaults.
func New(fetcher Fetcher, cfg Config, logger *zap.Logger) *Scanner {
	if cfg.CrawlerToken == "" {
		cfg.CrawlerToken = DefaultCrawlerToken
	}
	if len(cfg.ExpectedSchemas) == 0 {
		cfg.ExpectedSchemas = ExpectedSchemaTypes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{fetcher: fetcher, cfg: cfg, logger: logger}
}

// Scan inspects the target and assembles the report. The page is fetched once
// and its body/headers shared by the meta, header, and schema inspections;
// robots.txt and sitemap.xml are separate fetches. One check failing never
// prevents the others from running: each degrades independently to
// OutcomeUnknown (or an empty schema set) and every report field is always
// populated.
func (s *Scanner) Scan(ctx context.Context, target string) Report {
	start := time.Now()
	report := Report{Target: target, ScannedAt: start.UTC()}

	page, pageErr := s.fetch(ctx, fetchKindPage, target)
	if pageErr != nil {
		s.logger.Debug("page fetch failed", zap.String("target", target), zap.Error(pageErr))
	}

	report.RobotsTxt = s.checkRobots(ctx, target)
	report.MetaNoindex = s.checkMetaDirective(page, pageErr, DirectiveNoindex)
	report.MetaNofollow = s.checkMetaDirective(page, pageErr, DirectiveNofollow)
	report.BotProtection = s.checkBotProtection(page, pageErr)
	report.Sitemap = s.checkSitemap(ctx, target)

	// A failed page fetch leaves an empty body, which extracts to an empty set.
	report.Schemas = ExtractSchemaTypes(page.Body)
	report.MissingSchemas = MissingSchemas(report.Schemas, s.cfg.ExpectedSchemas)

	telemetry.ObserveScan(time.Since(start))
	s.logger.Info("scan completed",
		zap.String("target", target),
		zap.String("robots", string(report.RobotsTxt.Outcome)),
		zap.String("bot_protection", string(report.BotProtection.Outcome)),
		zap.Int("schemas_found", len(report.Schemas)),
		zap.Duration("duration", time.Since(start)),
	)
	return report
}

func (s *Scanner) fetch(ctx context.Context, kind, rawURL string) (FetchResult, error) {
	res, err := s.fetcher.Fetch(ctx, rawURL)
	telemetry.ObserveFetch(kind, err == nil)
	if err != nil {
		return FetchResult{}, fmt.Errorf("fetch %s: %w", kind, err)
	}
	return res, nil
}

// resolveOriginPath resolves a root-relative path like /robots.txt against
// the target's origin.
func resolveOriginPath(target, path string) (string, error) {
	base, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parse target url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("target url %q is not absolute", target)
	}
	return base.ResolveReference(&url.URL{Path: path}).String(), nil
}
