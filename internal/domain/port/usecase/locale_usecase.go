package usecase

import (
	"context"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
)

// LocaleContext supplies the locale a writer renders with
type LocaleContext interface {
	// Settings returns the active locale bundle
	Settings() entity.LocaleSettings
}

// LocaleUseCase manages the set of available locales and the active one
type LocaleUseCase interface {
	LocaleContext

	// Get returns the active locale identifier
	Get() string

	// Set activates a locale. "" and "en" select the built-in en-us.
	// Unknown identifiers fail with ErrInvalidLocaleIdentifier.
	Set(identifier string) (string, error)

	// IsAvailable reports whether Set would accept identifier
	IsAvailable(identifier string) bool

	// ListAvailable returns the identifiers of every registered locale, sorted
	ListAvailable() []string

	// Lookup returns a registered locale without activating it
	Lookup(identifier string) (entity.LocaleSettings, error)

	// Register adds or replaces a bundle
	Register(bundle entity.LocaleSettings) error

	// Load registers every bundle held by repo, returning how many were added
	Load(ctx context.Context, repo persistence.LocaleRepository) (int, error)
}
