package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const Ext = ".tmpl"

type NotFoundError struct {
	Language string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s/%s", e.Language, e.Name)
}

type Store struct {
	root string
}

// NewStore picks the configured directory when it exists, otherwise the
// built-in catalog shipped alongside the binary.
func NewStore(configuredDir, builtinDir string) *Store {
	root := builtinDir
	if info, err := os.Stat(configuredDir); err == nil && info.IsDir() {
		root = configuredDir
	}
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Load(language, name string) (*Template, error) {
	path := filepath.Join(s.root, language, name+Ext)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Language: language, Name: name}
		}
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return &Template{Language: language, Name: name, Body: string(data)}, nil
}

func (s *Store) List(language string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, language))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list templates for %s: %w", language, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}

	sort.Strings(names)
	return names, nil
}

func (s *Store) Languages() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list template catalog %s: %w", s.root, err)
	}

	var languages []string
	for _, entry := range entries {
		if entry.IsDir() {
			languages = append(languages, entry.Name())
		}
	}

	sort.Strings(languages)
	return languages, nil
}
