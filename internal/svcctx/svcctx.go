// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/home"
	"github.com/bookvault/bookvault/internal/metadata"
	"github.com/bookvault/bookvault/internal/poster"
	"github.com/bookvault/bookvault/internal/store"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Store     *store.Store
	Extractor *metadata.Extractor
	Composer  *poster.Composer
	ConfigMgr *config.Manager
	Home      *home.Dir
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// StoreFrom extracts the catalog store from context.
func StoreFrom(ctx context.Context) *store.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Store
	}
	return nil
}

// ExtractorFrom extracts the metadata pipeline from context.
func ExtractorFrom(ctx context.Context) *metadata.Extractor {
	if s := ServicesFrom(ctx); s != nil {
		return s.Extractor
	}
	return nil
}

// ComposerFrom extracts the poster composer from context.
func ComposerFrom(ctx context.Context) *poster.Composer {
	if s := ServicesFrom(ctx); s != nil {
		return s.Composer
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigMgr
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
