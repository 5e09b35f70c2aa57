// Package config loads docxparse command settings.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, an optional YAML file, a .env file, and the process
// environment (DOCXPARSE_* keys). Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output modes. Keep the oneof tag on Config.Mode in step with Modes.
const (
	ModeText     = "text"
	ModeHeadings = "headings"
	ModeTables   = "tables"
	ModeMetadata = "metadata"
	ModeMarkdown = "markdown"
	ModeJSON     = "json"
	ModeHTML     = "html"
	ModeImages   = "images"
)

// Modes lists every accepted output mode.
var Modes = []string{
	ModeText, ModeHeadings, ModeTables, ModeMetadata,
	ModeMarkdown, ModeJSON, ModeHTML, ModeImages,
}

// DefaultEnvFile is the dotenv file read by Load when present.
const DefaultEnvFile = ".env"

// EnvPrefix prefixes every environment key.
const EnvPrefix = "DOCXPARSE_"

// Config holds the command settings.
type Config struct {
	Mode        string `yaml:"mode" validate:"required,oneof=text headings tables metadata markdown json html images"`
	Output      string `yaml:"output"`
	MediaDir    string `yaml:"media_dir"`
	OCR         bool   `yaml:"ocr"`
	OCRLanguage string `yaml:"ocr_language"`
	Workers     int    `yaml:"workers" validate:"min=1"`
	Debug       bool   `yaml:"debug"`
	MaxPartSize int64  `yaml:"max_part_size" validate:"gt=0"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Mode:        ModeText,
		MediaDir:    "media",
		OCRLanguage: "eng",
		Workers:     runtime.NumCPU(),
		MaxPartSize: 50 << 20,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), envFile (skipped when it does not exist) and the process
// environment. The result is not validated: callers apply their own
// overrides first and then call Validate.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	env, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)

	return cfg, nil
}

// loadFile overlays the YAML file onto c. Keys missing from the file keep
// their current values.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// Validate checks that the settings are usable. Only the first failing
// field is reported.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.StructField() {
	case "Mode":
		return fmt.Errorf("invalid mode %q (want one of %v)", c.Mode, Modes)
	case "Workers":
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	case "MaxPartSize":
		return fmt.Errorf("max_part_size must be positive, got %d", c.MaxPartSize)
	}
	return fmt.Errorf("invalid %s: failed %q check", fe.Field(), fe.Tag())
}

// env resolves keys from the process environment first and the dotenv
// file second.
type env map[string]string

func readEnvFile(name string) (env, error) {
	if name == "" {
		return env{}, nil
	}
	values, err := godotenv.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return env{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", name, err)
	}
	return env(values), nil
}

func (e env) lookup(key string) (string, bool) {
	key = EnvPrefix + key
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := e[key]
	return v, ok
}

func (e env) getString(key, defaultValue string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return defaultValue
}

func (e env) getInt(key string, defaultValue int) int {
	v, ok := e.lookup(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func (e env) getInt64(key string, defaultValue int64) int64 {
	v, ok := e.lookup(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}

func (e env) getBool(key string, defaultValue bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

func (c *Config) applyEnv(e env) {
	c.Mode = e.getString("MODE", c.Mode)
	c.Output = e.getString("OUTPUT", c.Output)
	c.MediaDir = e.getString("MEDIA_DIR", c.MediaDir)
	c.OCR = e.getBool("OCR", c.OCR)
	c.OCRLanguage = e.getString("OCR_LANGUAGE", c.OCRLanguage)
	c.Workers = e.getInt("WORKERS", c.Workers)
	c.Debug = e.getBool("DEBUG", c.Debug)
	c.MaxPartSize = e.getInt64("MAX_PART_SIZE", c.MaxPartSize)
}
