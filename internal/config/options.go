package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/phsc/internal/diagnostics"
)

// Options configure one compilation session.
type Options struct {
	// Bail stops a unit's pipeline after the first pass that reported an error.
	Bail bool `yaml:"bail" toml:"bail"`

	// LogLevel is the lowest severity kept by the diagnostic sink.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Color is one of auto, always or never.
	Color string `yaml:"color" toml:"color"`

	// RuntimeModule and ThrowHelper name the function every non-trivial
	// throw operand is routed through.
	RuntimeModule string `yaml:"runtime_module" toml:"runtime_module"`
	ThrowHelper   string `yaml:"throw_helper" toml:"throw_helper"`

	// ReservedWords extends the built-in reserved word list of the
	// output language.
	ReservedWords []string `yaml:"reserved_words,omitempty" toml:"reserved_words"`

	// RelativeImports lets a nested use group resolve its base against
	// the imports declared next to it.
	RelativeImports bool `yaml:"relative_imports,omitempty" toml:"relative_imports"`
}

func Default() *Options {
	return &Options{
		Bail:          true,
		LogLevel:      "info",
		Color:         string(diagnostics.ColorAuto),
		RuntimeModule: RuntimeModuleName,
		ThrowHelper:   ThrowHelperName,
	}
}

// Level parses LogLevel.
func (o *Options) Level() (diagnostics.Severity, error) {
	return diagnostics.ParseSeverity(o.LogLevel)
}

// LoadOptions reads an options file; the decoder is chosen by extension.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}
	return ParseOptions(data, path)
}

// ParseOptions decodes options from bytes. The path argument selects the
// format and is used in error messages.
func ParseOptions(data []byte, path string) (*Options, error) {
	opts := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, opts); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := tree.Unmarshal(opts); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if !tree.Has("bail") {
			opts.Bail = Default().Bail
		}
	default:
		return nil, fmt.Errorf("%s: unsupported options format %q", path, ext)
	}
	opts.setDefaults()
	if err := opts.validate(path); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) setDefaults() {
	def := Default()
	if o.LogLevel == "" {
		o.LogLevel = def.LogLevel
	}
	if o.Color == "" {
		o.Color = def.Color
	}
	if o.RuntimeModule == "" {
		o.RuntimeModule = def.RuntimeModule
	}
	if o.ThrowHelper == "" {
		o.ThrowHelper = def.ThrowHelper
	}
}

func (o *Options) validate(path string) error {
	if _, err := o.Level(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	switch diagnostics.ColorMode(o.Color) {
	case diagnostics.ColorAuto, diagnostics.ColorAlways, diagnostics.ColorNever:
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, o.Color)
	}
	if strings.Contains(o.RuntimeModule, "::") {
		return fmt.Errorf("%s: runtime_module must be a single module name, got %q", path, o.RuntimeModule)
	}
	for i, w := range o.ReservedWords {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%s: reserved_words[%d] is empty", path, i)
		}
	}
	return nil
}

// FindOptions searches dir and its parents for an options file.
// It returns an empty path and nil error when there is none.
func FindOptions(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range OptionsFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
