// Package config handles docscribe project configuration file loading
// and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the docscribe configuration file.
const ConfigFileName = "docscribe.yaml"

// Config holds defaults for any CLI flag, loaded from docscribe.yaml
// and overridden by explicit flags.
type Config struct {
	// OutputFormat selects the codec used for output: "dast" or "json".
	OutputFormat string `yaml:"format"`
	// Extensions restricts which file extensions are collected.
	Extensions []string `yaml:"extensions"`
	// Recursive enables descending into subdirectories.
	Recursive bool `yaml:"recursive"`
	// Parallel enables the bounded worker pool instead of sequential processing.
	Parallel bool `yaml:"parallel"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty"`
	// Validate enables running the validator and reporting its warnings.
	Validate bool `yaml:"validate"`
	// SourceMap enables emitting a `<name>.map.json` sidecar.
	SourceMap bool `yaml:"source_map"`
	// Streaming enables the buffered streaming reader for large inputs.
	Streaming bool `yaml:"streaming"`
	// OutputDir is the default output directory.
	OutputDir string `yaml:"output_dir"`
	// Jobs caps the worker pool size; zero means GOMAXPROCS.
	Jobs int `yaml:"jobs"`
	// Verbose enables progress/diagnostic logging during extraction.
	Verbose bool `yaml:"verbose"`

	// ProjectRoot is the absolute directory docscribe.yaml was found
	// in, or the start path if no config file was found.
	ProjectRoot string `yaml:"-"`
}

// DefaultExtensions lists the file extensions collected when neither
// docscribe.yaml nor the --ext flag narrows the set.
var DefaultExtensions = []string{
	"md", "markdown", "js", "mjs", "cjs", "ts", "tsx", "mts", "java", "py", "pyi",
}

// defaults returns the built-in configuration used when no
// docscribe.yaml is found.
func defaults(projectRoot string) *Config {
	return &Config{
		OutputFormat: "dast",
		Recursive:    true,
		Extensions:   append([]string(nil), DefaultExtensions...),
		ProjectRoot:  projectRoot,
	}
}

// Load searches for docscribe.yaml starting from the current working
// directory, walking up the directory tree. If found, it parses the
// configuration. If not found, returns default configuration.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for docscribe.yaml starting from the given
// path, walking up the directory tree. If found, it parses the
// configuration. If not found, returns default configuration with
// startPath as ProjectRoot.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			startPath,
			err,
		)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if _, statErr := os.Stat(configPath); statErr == nil {
			cfg, parseErr := parseConfigFile(configPath)
			if parseErr != nil {
				return nil, parseErr
			}
			cfg.ProjectRoot = currentPath

			if validateErr := cfg.validate(); validateErr != nil {
				return nil, fmt.Errorf(
					"invalid configuration in %s: %w",
					configPath,
					validateErr,
				)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return defaults(absPath), nil
}

// parseConfigFile reads and parses a docscribe.yaml file.
func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := *defaults("")
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "dast"
	}

	return &cfg, nil
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	switch c.OutputFormat {
	case "dast", "json":
	default:
		return fmt.Errorf("invalid format %q, must be \"dast\" or \"json\"", c.OutputFormat)
	}

	for _, ext := range c.Extensions {
		if strings.ContainsAny(ext, "/\\*") {
			return fmt.Errorf("invalid extension %q: must not contain path separators or wildcards", ext)
		}
	}

	return nil
}

// OutputPath joins the configured OutputDir with name, or returns name
// unchanged when OutputDir is unset.
func (c *Config) OutputPath(name string) string {
	if c.OutputDir == "" {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}
