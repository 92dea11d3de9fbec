package dictionary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"gopkg.in/yaml.v3"
)

const ManifestKind = "Dictionary"

// Manifest lists the word-list files of each language.
//
//	kind: Dictionary
//	version: v1
//	languages:
//	  - language: portuguese
//	    files: [words/pt.txt]
type Manifest struct {
	Kind      string          `yaml:"kind" schema:"enum=Dictionary,default=Dictionary"`
	Version   string          `yaml:"version" schema:"default=v1"`
	Languages []LanguageFiles `yaml:"languages" schema:"required,minItems=1"`

	// dir resolves relative file paths
	dir string
}

type LanguageFiles struct {
	Language string   `yaml:"language" schema:"required" description:"portuguese, english or an alias (pt, pt-br, en)"`
	Files    []string `yaml:"files" schema:"required,minItems=1" description:"Word-list paths relative to the manifest"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest file: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest decodes and validates a manifest whose relative paths resolve against dir.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest YAML: %w", err)
	}
	m.dir = dir
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() error {
	if m.Kind != "" && m.Kind != ManifestKind {
		return fmt.Errorf("manifest kind must be %q, got %q", ManifestKind, m.Kind)
	}
	if len(m.Languages) == 0 {
		return fmt.Errorf("manifest has no languages")
	}
	for i, entry := range m.Languages {
		if _, err := domain.ParseLanguage(entry.Language); err != nil {
			return fmt.Errorf("language at index %d: %w", i, err)
		}
		if len(entry.Files) == 0 {
			return fmt.Errorf("language %q has no files", entry.Language)
		}
	}
	return nil
}

// Path resolves a manifest file entry.
func (m *Manifest) Path(file string) string {
	if filepath.IsAbs(file) || m.dir == "" {
		return file
	}
	return filepath.Join(m.dir, file)
}
