package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viant/firestore-gen/gen/render"
	mcp "github.com/viant/mcp"
)

// DefaultInput is the credentials document location used when none is
// configured. Relative paths resolve against the working directory.
const DefaultInput = "./android/google-services.json"

var javaIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// javaReserved holds keywords and literals that cannot be used as identifiers.
var javaReserved = toSet(
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while", "_",
	"true", "false", "null",
)

// restrictedTypeNames are legal identifiers that cannot name a class.
var restrictedTypeNames = toSet("var", "yield", "record", "sealed", "permits")

func toSet(words ...string) map[string]bool {
	ret := make(map[string]bool, len(words))
	for _, word := range words {
		ret[word] = true
	}
	return ret
}

// Config controls where credentials are read from, what Java type is
// generated and where the source is written.
type Config struct {
	// Input is a local path or afs URL of the google-services.json document.
	Input string `yaml:"input,omitempty" json:"input,omitempty"`
	// Output is a local path or afs URL; empty writes to stdout.
	Output      string             `yaml:"output,omitempty" json:"output,omitempty"`
	JavaPackage string             `yaml:"javaPackage,omitempty" json:"javaPackage,omitempty"`
	ClassName   string             `yaml:"className,omitempty" json:"className,omitempty"`
	Server      *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	// Builtins selects Fluxor built-in services available to workflows
	// ("*" for all, "system/" for a namespace or an exact name).
	Builtins []string `yaml:"builtins,omitempty" json:"builtins,omitempty"`
}

// Load reads a YAML (or JSON) configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// Init applies defaults for unset fields.
func (c *Config) Init() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.JavaPackage == "" {
		c.JavaPackage = render.DefaultPackage
	}
	if c.ClassName == "" {
		c.ClassName = render.DefaultClassName
	}
	if len(c.Builtins) == 0 {
		c.Builtins = []string{"*"}
	}
}

// Validate checks that the Java target names are legal.
func (c *Config) Validate() error {
	return ValidateTarget(c.JavaPackage, c.ClassName)
}

// ValidateTarget checks a Java package and class name. Empty values are
// accepted and mean "use the default".
func ValidateTarget(pkg, className string) error {
	if pkg != "" {
		for _, segment := range strings.Split(pkg, ".") {
			if !isIdentifier(segment) {
				return fmt.Errorf("invalid java package: %q", pkg)
			}
		}
	}
	if className != "" && (!isIdentifier(className) || restrictedTypeNames[className]) {
		return fmt.Errorf("invalid class name: %q", className)
	}
	return nil
}

func isIdentifier(name string) bool {
	return javaIdentifier.MatchString(name) && !javaReserved[name]
}
