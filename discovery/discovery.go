// Package discovery loads module manifests from disk and turns them into
// descriptors for graph building. Manifests are small YAML documents
// declaring a module's name, version, and dependency constraints.
package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/go-modorder/depgraph"
)

// Manifest is one module's on-disk declaration.
type Manifest struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`
}

// ManifestFile pairs a parsed manifest with its on-disk source.
type ManifestFile struct {
	Manifest Manifest
	Path     string
}

// Validate checks the manifest's structural invariants: a non-empty
// name, a canonical semantic version, and no dependency on itself.
func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("manifest: name is required")
	}
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return fmt.Errorf("manifest: %s: invalid version %q: %w", m.Name, m.Version, err)
	}
	if _, ok := m.Dependencies[m.Name]; ok {
		return fmt.Errorf("manifest: %s: module depends on itself", m.Name)
	}
	return nil
}

// Descriptor converts the manifest into the graph builder's input form.
func (m Manifest) Descriptor() depgraph.ModuleDescriptor {
	return depgraph.ModuleDescriptor{
		Name:         m.Name,
		Version:      m.Version,
		Dependencies: m.Dependencies,
	}
}

// ParseManifest decodes and validates a single manifest payload.
func ParseManifest(data []byte) (Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Manifest{}, fmt.Errorf("manifest: payload is empty")
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadFile reads a YAML file from disk and returns the parsed manifest.
func LoadFile(path string) (ManifestFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ManifestFile{}, fmt.Errorf("manifest: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return ManifestFile{}, fmt.Errorf("manifest: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ManifestFile{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return ManifestFile{}, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return ManifestFile{Manifest: m, Path: filepath.Clean(path)}, nil
}

// LoadDir scans a directory for *.yaml and *.yml manifests and returns
// them sorted by path. A missing directory is treated as "no modules"
// to simplify startup. Two manifests declaring the same module name are
// an error; last-write-wins would hide packaging mistakes.
func LoadDir(dir string) ([]ManifestFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("manifest: read %s: %w", trimmed, err)
	}
	var files []ManifestFile
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) {
			continue
		}
		path := filepath.Join(trimmed, name)
		mf, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[mf.Manifest.Name]; ok {
			return nil, fmt.Errorf("manifest: module %q declared by both %s and %s",
				mf.Manifest.Name, prev, path)
		}
		seen[mf.Manifest.Name] = path
		files = append(files, mf)
	}
	if len(files) == 0 {
		return nil, nil
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Descriptors converts loaded manifests into graph builder input,
// preserving the manifests' order.
func Descriptors(files []ManifestFile) []depgraph.ModuleDescriptor {
	if len(files) == 0 {
		return nil
	}
	out := make([]depgraph.ModuleDescriptor, len(files))
	for i, f := range files {
		out[i] = f.Manifest.Descriptor()
	}
	return out
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
