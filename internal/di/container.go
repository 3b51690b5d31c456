package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/phish-triage/internal/config"
	"github.com/mikey/phish-triage/internal/core"
	"github.com/mikey/phish-triage/internal/factory"
	"github.com/mikey/phish-triage/internal/logging"
	"github.com/mikey/phish-triage/internal/ports"
	"github.com/mikey/phish-triage/internal/utils"
	"github.com/mikey/phish-triage/internal/whitelist"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewScorerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register adjudicator
	if err := container.Provide(func(f *factory.LLMFactory) (core.Adjudicator, error) {
		return f.CreateAdjudicator()
	}); err != nil {
		return nil, err
	}

	// Register subject scorer
	if err := container.Provide(func(f *factory.ScorerFactory) (core.SubjectScorer, error) {
		return f.CreateSubjectScorer()
	}); err != nil {
		return nil, err
	}

	// Register verdict cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.VerdictCache, error) {
		return f.CreateVerdictCache()
	}); err != nil {
		return nil, err
	}

	// Register whitelist checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (*whitelist.Checker, error) {
		triageCfg, err := cfg.GetTriage()
		if err != nil {
			return nil, err
		}
		if len(triageCfg.WhitelistedDomains) > 0 {
			logger.Info("Loaded whitelisted domains", zap.Strings("domains", triageCfg.WhitelistedDomains))
		}
		return whitelist.NewChecker(triageCfg.WhitelistedDomains, logger), nil
	}); err != nil {
		return nil, err
	}

	// Register triage service
	if err := container.Provide(func(
		adjudicator core.Adjudicator,
		scorer core.SubjectScorer,
		cache core.VerdictCache,
		wl *whitelist.Checker,
		cfg *config.Config,
		cacheFactory *factory.CacheFactory,
		logger *zap.Logger,
	) (*core.TriageService, error) {
		triageCfg, err := cfg.GetTriage()
		if err != nil {
			return nil, err
		}
		cacheTTL, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		return core.NewTriageService(
			adjudicator,
			scorer,
			cache,
			wl,
			logger,
			cacheFactory.IsCacheEnabled(),
			cacheTTL,
			triageCfg.Timeout,
			triageCfg.MaxAttempts,
			triageCfg.RetryBackoff,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register email frontend
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.EmailFrontend, error) {
		return f.CreateEmailFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
