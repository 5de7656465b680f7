// Package config provides configuration structures and loading for
// po-sync-helper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file, looked up in the
// worktree root.
const FileName = "po-sync-helper.yaml"

// globalFileName is the per-user configuration file in the home directory.
const globalFileName = ".po-sync-helper.yaml"

// Config holds the complete po-sync-helper configuration.
type Config struct {
	// Messages is the default message-inventory file consumed by the
	// init and update commands when --messages is not given.
	Messages string `yaml:"messages"`

	// Catalogs are the catalog files the update command works on when
	// called without arguments.
	Catalogs []string `yaml:"catalogs"`

	// Header holds fields stamped into the header of catalogs created
	// by the init command.
	Header HeaderConfig `yaml:"header"`
}

// HeaderConfig holds catalog header fields.
type HeaderConfig struct {
	ProjectIDVersion string            `yaml:"project_id_version"`
	ReportBugsTo     string            `yaml:"report_msgid_bugs_to"`
	LanguageTeam     string            `yaml:"language_team"`
	Language         string            `yaml:"language"`
	Extra            map[string]string `yaml:"extra"`
}

// Fields returns the configured header fields as name/value pairs. Empty
// fields are skipped; extra fields follow the well-known ones, sorted by
// name for reproducible output.
func (h HeaderConfig) Fields() [][2]string {
	var fields [][2]string
	for _, f := range [][2]string{
		{"Project-Id-Version", h.ProjectIDVersion},
		{"Report-Msgid-Bugs-To", h.ReportBugsTo},
		{"Language-Team", h.LanguageTeam},
		{"Language", h.Language},
	} {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	names := make([]string, 0, len(h.Extra))
	for name := range h.Extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, [2]string{name, h.Extra[name]})
	}
	return fields
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Messages: "messages.json",
	}
}

// Load returns the merged configuration: built-in defaults, the per-user
// file in the home directory, the per-project file in workDir, and the
// explicit file when not empty, with later sources winning. A missing
// explicit file is an error; missing implicit files are not.
func Load(explicit, workDir string) (*Config, error) {
	cfg := Default()

	var implicit []string
	if home, err := os.UserHomeDir(); err == nil {
		implicit = append(implicit, filepath.Join(home, globalFileName))
	}
	if workDir != "" {
		implicit = append(implicit, filepath.Join(workDir, FileName))
	}
	for _, path := range implicit {
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			continue
		}
		loaded, err := loadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(cfg, loaded)
	}

	if explicit != "" {
		loaded, err := loadConfigFromFile(explicit)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(cfg, loaded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFromFile reads a single YAML configuration file.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfigs merges override into base. Non-empty override fields win;
// extra header fields merge key-wise.
func mergeConfigs(base, override *Config) *Config {
	merged := *base
	if override.Messages != "" {
		merged.Messages = override.Messages
	}
	if len(override.Catalogs) > 0 {
		merged.Catalogs = override.Catalogs
	}
	if override.Header.ProjectIDVersion != "" {
		merged.Header.ProjectIDVersion = override.Header.ProjectIDVersion
	}
	if override.Header.ReportBugsTo != "" {
		merged.Header.ReportBugsTo = override.Header.ReportBugsTo
	}
	if override.Header.LanguageTeam != "" {
		merged.Header.LanguageTeam = override.Header.LanguageTeam
	}
	if override.Header.Language != "" {
		merged.Header.Language = override.Header.Language
	}
	if len(override.Header.Extra) > 0 {
		extra := make(map[string]string, len(base.Header.Extra)+len(override.Header.Extra))
		for name, value := range base.Header.Extra {
			extra[name] = value
		}
		for name, value := range override.Header.Extra {
			extra[name] = value
		}
		merged.Header.Extra = extra
	}
	return &merged
}

// Validate checks that configured header fields cannot corrupt a catalog
// header block.
func (c *Config) Validate() error {
	for _, field := range c.Header.Fields() {
		name, value := field[0], field[1]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("header field with empty name")
		}
		if strings.ContainsAny(name, ":\n") {
			return fmt.Errorf("header field '%s' has invalid characters in its name", name)
		}
		if strings.Contains(value, "\n") {
			return fmt.Errorf("header field '%s' value must not contain newlines", name)
		}
	}
	return nil
}
