// Package config loads and validates the interpreter's configuration.
//
// The interpreter never reads configuration on its own. All settings come
// from the embedded defaults unless the user names a file explicitly.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigBytes []byte

// ConfigurationName is the file name Load looks for inside a directory.
const ConfigurationName = "aash.yaml"

// Color modes for prompt rendering.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Configuration holds every tunable of the interpreter. The zero value is
// not valid, start from Default.
type Configuration struct {
	// Prompt is printed before each line of input.
	Prompt string `json:"prompt" validate:"required"`
	// Color controls prompt coloring.
	Color string `json:"color" validate:"required,oneof=auto always never"`

	Log    Log    `json:"log"`
	Record Record `json:"record"`
}

// Log configures the structured session log.
type Log struct {
	// File receives log lines, appended. Empty disables logging.
	File string `json:"file"`
	// Level is the minimum level that gets written.
	Level string `json:"level" validate:"required,oneof=trace debug info warn error"`
	// Format selects the log line format.
	Format string `json:"format" validate:"required,oneof=text json"`
}

// Record configures session transcript capture.
type Record struct {
	// Dir receives one asciicast file per session. Empty disables capture.
	Dir string `json:"dir"`
}

// Validate checks the configuration for semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigBytes, &out); err != nil {
		panic(err)
	}
	return &out
}
