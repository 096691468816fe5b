package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/reusablegen/internal/writer"
)

// Unit represents a generated companion file in the manifest.
type Unit struct {
	Type      string `yaml:"type" json:"type"`
	Companion string `yaml:"companion" json:"companion"`
	File      string `yaml:"file" json:"file"`
	Digest    string `yaml:"digest" json:"digest"`
}

// Manifest tracks the companion files produced by the last generation pass.
type Manifest struct {
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Units   []Unit `yaml:"units" json:"units"`
}

// Digest returns the hex SHA-256 of content.
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories
// as needed. The previous manifest stays intact if the write fails.
func (m *Manifest) Save(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := writer.New(fs).WriteFile(path, data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Record upserts u by source type and keeps units sorted by type so the
// manifest does not churn between runs.
func (m *Manifest) Record(u Unit) {
	defer sort.SliceStable(m.Units, func(i, j int) bool {
		return m.Units[i].Type < m.Units[j].Type
	})

	for i := range m.Units {
		if m.Units[i].Type == u.Type {
			m.Units[i] = u
			return
		}
	}

	m.Units = append(m.Units, u)
}

// Find returns the unit recorded for the qualified source type name.
func (m *Manifest) Find(typ string) (Unit, bool) {
	for _, u := range m.Units {
		if u.Type == typ {
			return u, true
		}
	}
	return Unit{}, false
}
