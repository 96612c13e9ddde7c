// Package catalog provides the read-only part -> product table used to
// enrich part messages.
//
// Catalog files are YAML or TOML with a single "parts" table keyed by
// part number:
//
//	parts:
//	  42: SKT-9
//	  17: BRK-2
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/logging"
)

// Catalog answers which product uses a part.
type Catalog interface {
	ProductFor(part int) (string, bool)
}

// Map is a Catalog backed by a map. Safe for concurrent use.
type Map struct {
	mu    sync.RWMutex
	parts map[int]string
}

// NewMap copies parts into a new Map.
func NewMap(parts map[int]string) *Map {
	m := &Map{parts: make(map[int]string, len(parts))}
	for k, v := range parts {
		m.parts[k] = v
	}
	return m
}

// ProductFor implements Catalog.
func (m *Map) ProductFor(part int) (string, bool) {
	if m == nil {
		return "", false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.parts[part]
	return p, ok
}

// Set records product for part.
func (m *Map) Set(part int, product string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parts[part] = product
}

// Len returns the number of parts.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.parts)
}

// Parts lists part numbers in ascending order.
func (m *Map) Parts() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]int, 0, len(m.parts))
	for k := range m.parts {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Empty is a catalog with no parts.
var Empty Catalog = NewMap(nil)

type catalogFile struct {
	Parts map[string]string `yaml:"parts" toml:"parts"`
}

// Load reads a catalog file; the format follows the extension.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to read catalog %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	logger := logging.WithFields(map[string]interface{}{
		"component": "catalog",
		"path":      path,
		"parts":     m.Len(),
	})
	logger.Debug().Msg("Catalog loaded")
	return m, nil
}

// Parse decodes catalog data in "yaml", "yml" or "toml" format.
func Parse(data []byte, format string) (*Map, error) {
	var f catalogFile
	var err error
	switch format {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, errors.Newf(errors.ErrCatalogLoad, "unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to parse %s catalog", format)
	}

	parts := make(map[int]string, len(f.Parts))
	for key, product := range f.Parts {
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, errors.Newf(errors.ErrCatalogLoad, "part key %q is not a number", key).
				WithDetail("key", key)
		}
		if strings.TrimSpace(product) == "" {
			return nil, errors.New(errors.ErrCatalogLoad, fmt.Sprintf("part %d has no product", n)).
				WithDetail("part", n)
		}
		parts[n] = product
	}
	return NewMap(parts), nil
}
