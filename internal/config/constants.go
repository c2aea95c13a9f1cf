package config

import "gopkg.in/yaml.v3"

// Version is the current orcinuscc version.
var Version = "0.1.0"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".orx", ".orc"}

// BuiltinsModuleName is the well-known name of the builtins module (§6).
const BuiltinsModuleName = "__builtins__"

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Dunder operator names used by unary/binary lowering (§4.6).
const (
	DunderPos = "__pos__"
	DunderNeg = "__neg__"
	DunderNot = "__not__"
	DunderAdd = "__add__"
	DunderSub = "__sub__"
	DunderMul = "__mul__"
	DunderDiv = "__div__"
)

// Built-in primitive type names (§4.6, §6).
const (
	IntTypeName  = "int"
	BoolTypeName = "bool"
	VoidTypeName = "void"
	StrTypeName  = "str"
)

// NativeAttributeName marks an externally-linked function (§3, §4.7).
const NativeAttributeName = "native"

// Settings is the optional per-workspace YAML configuration
// (".orcinus.yml" next to the entry file). Mirrors the teacher's pattern of
// a yaml.v3-decoded settings struct read once at startup.
type Settings struct {
	CacheDir    string `yaml:"cacheDir"`
	StrictMode  bool   `yaml:"strictMode"`
	Verbose     bool   `yaml:"verbose"`
	NoColor     bool   `yaml:"noColor"`
	MaxAnalyzed int    `yaml:"maxAnalyzed"`
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{CacheDir: ".orcinus-cache", MaxAnalyzed: 0}
}

// ParseSettings decodes a Settings value from YAML bytes, defaulting unset fields.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if s.CacheDir == "" {
		s.CacheDir = ".orcinus-cache"
	}
	return s, nil
}
