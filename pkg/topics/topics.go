// Package topics serves long-form help topics embedded in the binary.
package topics

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/msgkit/pkg/errors"
)

//go:embed content/*.md
var content embed.FS

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the Manager
type Options struct {
	// Extensions considered as topics. Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager indexes the topics of a filesystem.
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Builtin returns a manager over msgkit's embedded topics.
func Builtin(opts Options) (*Manager, error) {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded topics missing")
	}
	return New(sub, opts)
}

// New scans fsys for topic files.
func New(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !m.supported(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan topics")
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of a topic.
func (m *Manager) Render(name string) (string, error) {
	t, ok := m.Get(name)
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "no help topic %q", name).
			WithDetail("available", m.List())
	}
	return m.renderer.Render(t.Content, path.Ext(t.Path)), nil
}
