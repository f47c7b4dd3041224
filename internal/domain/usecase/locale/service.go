package locale

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
)

// Service keeps the registry of locale bundles and the active locale
type Service struct {
	mu      sync.RWMutex
	bundles map[string]entity.LocaleSettings
	active  entity.LocaleSettings
	logger  coreport.Logger
}

var _ usecase.LocaleUseCase = (*Service)(nil)

// discard is the logger of a Service created without one
type discard struct{}

func (discard) SetLevel(coreport.LogLevel)   {}
func (discard) GetLevel() coreport.LogLevel  { return coreport.LogLevelError }
func (discard) Debug(string, map[string]any) {}
func (discard) Info(string, map[string]any)  {}
func (discard) Warn(string, map[string]any)  {}
func (discard) Error(string, map[string]any) {}
func (discard) Flush() error                 { return nil }

// NewService creates a Service with en-us active and the given bundles
// registered. A nil logger discards log entries.
func NewService(logger coreport.Logger, bundles ...entity.LocaleSettings) (*Service, error) {
	if logger == nil {
		logger = discard{}
	}
	def := entity.DefaultLocale()
	s := &Service{
		bundles: map[string]entity.LocaleSettings{def.Identifier: def},
		active:  def,
		logger:  logger,
	}
	for _, b := range bundles {
		if err := s.Register(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Get returns the active locale identifier
func (s *Service) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.Identifier
}

// Settings returns the active locale bundle
func (s *Service) Settings() entity.LocaleSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Set activates the locale matching identifier and returns its canonical id
func (s *Service) Set(identifier string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, err := s.resolve(identifier)
	if err != nil {
		s.logger.Warn("Rejected locale", map[string]any{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return "", err
	}

	s.active = bundle
	s.logger.Info("Locale activated", map[string]any{
		"requested":  identifier,
		"identifier": bundle.Identifier,
	})
	return bundle.Identifier, nil
}

// IsAvailable reports whether identifier resolves to a registered locale
func (s *Service) IsAvailable(identifier string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := s.resolve(identifier)
	return err == nil
}

// ListAvailable returns every registered identifier, sorted
func (s *Service) ListAvailable() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available()
}

// Lookup resolves identifier like Set without activating it
func (s *Service) Lookup(identifier string) (entity.LocaleSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(identifier)
}

// Register validates and adds a bundle, replacing one with the same identifier.
// Replacing the active bundle takes effect immediately.
func (s *Service) Register(bundle entity.LocaleSettings) error {
	normalized, err := bundle.Normalize()
	if err != nil {
		return err
	}
	if _, err := language.Parse(normalized.Identifier); err != nil {
		return fmt.Errorf("%w: identifier %q: %v", errs.ErrInvalidLocaleBundle, normalized.Identifier, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bundles[normalized.Identifier] = normalized
	if s.active.Identifier == normalized.Identifier {
		s.active = normalized
	}
	s.logger.Debug("Locale registered", map[string]any{
		"identifier": normalized.Identifier,
		"units":      len(normalized.TimeUnits),
	})
	return nil
}

// Load registers every bundle of repo
func (s *Service) Load(ctx context.Context, repo persistence.LocaleRepository) (int, error) {
	bundles, err := repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list locale bundles", map[string]any{"error": err.Error()})
		return 0, err
	}

	for i, b := range bundles {
		if err := s.Register(b); err != nil {
			s.logger.Error("Failed to register locale bundle", map[string]any{
				"identifier": b.Identifier,
				"error":      err.Error(),
			})
			return i, err
		}
	}

	s.logger.Info("Locale bundles loaded", map[string]any{"count": len(bundles)})
	return len(bundles), nil
}

// resolve expects s.mu to be held
func (s *Service) resolve(identifier string) (entity.LocaleSettings, error) {
	id := entity.NormalizeLocaleIdentifier(identifier)
	if id == "" || id == "en" {
		id = entity.DefaultLocaleIdentifier
	}
	if !entity.ValidLocaleIdentifier(id) {
		return entity.LocaleSettings{}, errs.NewLocaleError(identifier, s.available())
	}
	if b, ok := s.bundles[id]; ok {
		return b, nil
	}

	tag, err := language.Parse(id)
	if err != nil {
		return entity.LocaleSettings{}, errs.NewLocaleError(identifier, s.available())
	}
	base, _ := tag.Base()
	for _, candidate := range s.available() {
		ct, err := language.Parse(candidate)
		if err != nil {
			continue
		}
		if cb, _ := ct.Base(); cb == base {
			return s.bundles[candidate], nil
		}
	}
	return entity.LocaleSettings{}, errs.NewLocaleError(identifier, s.available())
}

func (s *Service) available() []string {
	ids := make([]string, 0, len(s.bundles))
	for id := range s.bundles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Fixed returns a LocaleContext that always answers settings
func Fixed(settings entity.LocaleSettings) usecase.LocaleContext {
	return fixedLocale{settings: settings}
}

type fixedLocale struct {
	settings entity.LocaleSettings
}

func (f fixedLocale) Settings() entity.LocaleSettings { return f.settings }

// DisplayName returns the name of a locale in its own language,
// e.g. "Deutsch" for "de". Unparseable identifiers are returned unchanged.
func DisplayName(identifier string) string {
	tag, err := language.Parse(identifier)
	if err != nil {
		return identifier
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return identifier
}
