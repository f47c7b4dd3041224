package localefs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
)

// Repository reads locale bundles from *.yaml and *.yml files in one
// directory of a file system
type Repository struct {
	fsys fs.FS
	dir  string
}

var _ persistence.LocaleRepository = (*Repository)(nil)

// NewRepository creates a repository over dir inside fsys. Use "." for the root.
func NewRepository(fsys fs.FS, dir string) *Repository {
	if dir == "" {
		dir = "."
	}
	return &Repository{fsys: fsys, dir: dir}
}

// List decodes every bundle file, in file name order
func (r *Repository) List(ctx context.Context) ([]entity.LocaleSettings, error) {
	entries, err := fs.ReadDir(r.fsys, r.dir)
	if err != nil {
		return nil, fmt.Errorf("read locale directory %q: %w", r.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isBundleFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	bundles := make([]entity.LocaleSettings, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(r.fsys, path.Join(r.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read locale bundle %q: %w", name, err)
		}
		bundle, err := Decode(data, identifierFromFile(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// Decode parses one YAML bundle. fallbackID is used when the document has
// no identifier. Unknown keys are rejected.
func Decode(data []byte, fallbackID string) (entity.LocaleSettings, error) {
	var bundle entity.LocaleSettings

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bundle); err != nil {
		if errors.Is(err, io.EOF) {
			return entity.LocaleSettings{}, fmt.Errorf("%w: empty document", errs.ErrInvalidLocaleBundle)
		}
		return entity.LocaleSettings{}, fmt.Errorf("%w: %v", errs.ErrInvalidLocaleBundle, err)
	}
	if bundle.Identifier == "" {
		bundle.Identifier = fallbackID
	}
	return bundle.Normalize()
}

// Encode renders a bundle as YAML. Plural functions and numeric writers are
// not representable and are dropped.
func Encode(bundle entity.LocaleSettings) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(bundle); err != nil {
		return nil, fmt.Errorf("encode locale bundle %q: %w", bundle.Identifier, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isBundleFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func identifierFromFile(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
