// Package metadata extracts annotator metadata from OpenCRAVAT-style module
// directories. Each module lives in its own subdirectory of the modules root
// and is described by a YAML file named after the module
// (e.g. clinvar/clinvar.yml).
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLevel is the granularity assigned when a module config omits "level".
const DefaultLevel = "variant"

// ErrNoConfig indicates a module directory exists but contains no
// configuration file. Callers treat this as "skip silently", not as a
// failure — uninstalled or partially installed modules are common.
var ErrNoConfig = errors.New("module has no configuration file")

// ModuleMetadata is the normalized description of one annotation module.
// Every field is always populated: missing config values fall back to the
// defaults documented on Extract, so consumers never see absent keys.
// The Name field comes from the directory scan, never from file content,
// which guarantees uniqueness within one run.
type ModuleMetadata struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Level       string   `json:"level"`
	Version     string   `json:"version"`
	Developer   string   `json:"developer"`
	Citation    string   `json:"citation"`
	Website     string   `json:"website"`
}

// configFile mirrors the subset of the module YAML we care about.
// Unrecognized keys are ignored by the decoder.
type configFile struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Level       string   `yaml:"level"`
	Version     string   `yaml:"version"`
	Developer   struct {
		Organization string `yaml:"organization"`
		Citation     string `yaml:"citation"`
		Website      string `yaml:"website"`
	} `yaml:"developer"`
}

// ConfigPath returns the expected configuration file path for a module.
func ConfigPath(modulesRoot, name string) string {
	return filepath.Join(modulesRoot, name, name+".yml")
}

// Extract reads and normalizes the metadata for one module.
//
// Returns ErrNoConfig when the module has no configuration file. Any other
// error (unreadable file, malformed YAML) is returned wrapped; callers are
// expected to log it and continue with the remaining modules.
//
// Defaults applied on success: Title falls back to the module name, Level to
// DefaultLevel, Tags to an empty (non-nil) slice, and all provenance fields
// to the empty string.
func Extract(modulesRoot, name string) (*ModuleMetadata, error) {
	path := ConfigPath(modulesRoot, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoConfig
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	md := &ModuleMetadata{
		Name:        name,
		Title:       cfg.Title,
		Description: cfg.Description,
		Tags:        cfg.Tags,
		Level:       cfg.Level,
		Version:     cfg.Version,
		Developer:   cfg.Developer.Organization,
		Citation:    cfg.Developer.Citation,
		Website:     cfg.Developer.Website,
	}
	if md.Title == "" {
		md.Title = name
	}
	if md.Level == "" {
		md.Level = DefaultLevel
	}
	if md.Tags == nil {
		md.Tags = []string{}
	}

	return md, nil
}
