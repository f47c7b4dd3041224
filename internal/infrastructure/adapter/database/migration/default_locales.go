package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
)

// SeedDefaultLocales copies every bundle from source whose identifier the
// store does not hold yet, and returns how many were added
func SeedDefaultLocales(ctx context.Context, store persistence.LocaleStore, source persistence.LocaleRepository, logger coreport.Logger) (int, error) {
	stored, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	existing := make(map[string]bool, len(stored))
	for _, b := range stored {
		existing[b.Identifier] = true
	}

	defaults, err := source.List(ctx)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, b := range defaults {
		if existing[b.Identifier] {
			continue
		}
		if err := store.Save(ctx, b); err != nil {
			return added, err
		}
		added++
	}

	logger.Info("Default locale bundles seeded", map[string]any{
		"added":    added,
		"existing": len(stored),
	})
	return added, nil
}
