package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
)

// LocaleRepository is a source of locale bundles
type LocaleRepository interface {
	// List returns every bundle the source holds
	//
	// Possible errors:
	// - ErrInvalidLocaleBundle: If a stored bundle cannot be decoded
	// - ErrInternalServer: If the underlying store is unreachable
	List(ctx context.Context) ([]entity.LocaleSettings, error)
}

// LocaleStore is a LocaleRepository that can also persist bundles
type LocaleStore interface {
	LocaleRepository

	// Save inserts or replaces the bundle with the same identifier
	Save(ctx context.Context, bundle entity.LocaleSettings) error
}
