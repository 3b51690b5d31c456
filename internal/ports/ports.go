package ports

import (
	"context"

	"github.com/mikey/phish-triage/internal/core"
)

// EmailFrontend defines the interface for components that receive emails
// and hand them to the triage service
type EmailFrontend interface {
	// ProcessEmail runs a single email through triage
	ProcessEmail(ctx context.Context, req *core.EmailRequest) (*core.Verdict, error)

	// Start starts the frontend
	Start() error

	// Stop stops the frontend
	Stop() error
}
