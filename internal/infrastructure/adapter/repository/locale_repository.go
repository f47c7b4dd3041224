package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/localefs"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/model"
)

// LocaleRepository implements LocaleStore using GORM
type LocaleRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

var _ persistence.LocaleStore = (*LocaleRepository)(nil)

// NewLocaleRepository creates a new LocaleRepository instance
func NewLocaleRepository(db *gorm.DB, logger coreport.Logger) *LocaleRepository {
	return &LocaleRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// modelToEntity decodes the stored YAML document
func modelToEntity(m *model.LocaleBundle) (entity.LocaleSettings, error) {
	return localefs.Decode([]byte(m.Payload), m.Identifier)
}

// entityToModel validates the bundle and encodes it for storage
func entityToModel(bundle entity.LocaleSettings) (*model.LocaleBundle, error) {
	normalized, err := bundle.Normalize()
	if err != nil {
		return nil, err
	}
	payload, err := localefs.Encode(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidLocaleBundle, err)
	}
	return &model.LocaleBundle{Identifier: normalized.Identifier, Payload: string(payload)}, nil
}

// List returns every stored bundle ordered by identifier
func (r *LocaleRepository) List(ctx context.Context) ([]entity.LocaleSettings, error) {
	var rows []model.LocaleBundle
	if err := r.db.WithContext(ctx).Order("identifier").Find(&rows).Error; err != nil {
		r.logger.Error("Database error when listing locale bundles", map[string]any{"error": err.Error()})
		return nil, r.errorMapper.MapError(err, "list locale bundles")
	}

	bundles := make([]entity.LocaleSettings, 0, len(rows))
	for i := range rows {
		bundle, err := modelToEntity(&rows[i])
		if err != nil {
			r.logger.Error("Stored locale bundle is invalid", map[string]any{
				"identifier": rows[i].Identifier,
				"error":      err.Error(),
			})
			return nil, fmt.Errorf("stored bundle %s: %w", rows[i].Identifier, err)
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// Save inserts the bundle or replaces the stored one with the same identifier
func (r *LocaleRepository) Save(ctx context.Context, bundle entity.LocaleSettings) error {
	row, err := entityToModel(bundle)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identifier"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		r.logger.Error("Database error when saving locale bundle", map[string]any{
			"identifier": row.Identifier,
			"error":      err.Error(),
		})
		return r.errorMapper.MapError(err, "save locale bundle")
	}

	r.logger.Debug("Locale bundle saved", map[string]any{"identifier": row.Identifier})
	return nil
}
