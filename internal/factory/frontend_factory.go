package factory

import (
	"fmt"

	"github.com/mikey/phish-triage/internal/adapters/filter"
	"github.com/mikey/phish-triage/internal/adapters/httpapi"
	"github.com/mikey/phish-triage/internal/config"
	"github.com/mikey/phish-triage/internal/core"
	"github.com/mikey/phish-triage/internal/ports"
	"go.uber.org/zap"
)

// FrontendFactory creates email frontends based on configuration
type FrontendFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.TriageService
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(cfg *config.Config, logger *zap.Logger, service *core.TriageService) *FrontendFactory {
	return &FrontendFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateEmailFrontend creates an email frontend based on the configuration
func (f *FrontendFactory) CreateEmailFrontend() (ports.EmailFrontend, error) {
	mode := f.cfg.GetString("server.mode")

	switch mode {
	case "http":
		return httpapi.NewServer(
			f.service,
			f.logger,
			f.cfg.GetString("server.listen_address"),
			f.cfg.GetStringSlice("server.cors_origins"),
			f.cfg.GetBool("server.debug"),
		), nil
	case "postfix":
		return filter.NewPostfixFilter(
			f.service,
			f.logger,
			f.cfg.GetString("postfix.listen_address"),
			f.cfg.GetBool("postfix.block_phishing"),
			f.cfg.GetString("postfix.headers.verdict"),
			f.cfg.GetString("postfix.headers.score"),
			f.cfg.GetString("postfix.headers.reason"),
			f.cfg.GetString("postfix.reinject.address"),
			f.cfg.GetInt("postfix.reinject.port"),
			f.cfg.GetBool("postfix.reinject.enabled"),
			f.cfg.GetString("postfix.subject_prefix"),
			f.cfg.GetBool("postfix.modify_subject"),
		), nil
	case "cli":
		return filter.NewCliFilter(
			f.service,
			f.logger,
			f.cfg.GetBool("cli.verbose"),
		)
	default:
		return nil, fmt.Errorf("unsupported server mode: %s", mode)
	}
}
