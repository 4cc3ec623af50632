package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/tablekit/popover/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth           = "POPOVER_WIDTH"
	envHeight          = "POPOVER_HEIGHT"
	envShowFooter      = "POPOVER_FOOTER"
	envVerbose         = "POPOVER_VERBOSE"
	envTrace           = "POPOVER_TRACE"
	envLogFile         = "POPOVER_LOG_FILE"
	envSource          = "POPOVER_SOURCE"
	envCatalogURL      = "POPOVER_CATALOG_URL"
	envCatalogToken    = "POPOVER_CATALOG_TOKEN"
	envCatalogDebounce = "POPOVER_CATALOG_DEBOUNCE"
)

var validate = validator.New()

// Load parses configuration from CLI arguments and environment variables.
// A .env file in the working directory is folded into the environment first,
// which is how the catalog credential normally arrives.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popover", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show info messages for fired actions")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	source := fs.String("source", envOrDefault(env, envSource, "local"), "popover item source: local or catalog")
	catalogURL := fs.String("catalog-url", envOrDefault(env, envCatalogURL, ""), "base URL of the product catalog service")
	debounce := fs.Duration("catalog-debounce", envOrDuration(env, envCatalogDebounce, 0), "quiet period before a catalog lookup fires")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Source:     *source,
			Catalog: app.CatalogConfig{
				BaseURL:  *catalogURL,
				Token:    env[envCatalogToken],
				Debounce: *debounce,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"verbose":         strconv.FormatBool(*verbose),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
			"source":          *source,
			"catalogURL":      *catalogURL,
			"catalogDebounce": debounce.String(),
		},
		Args: append([]string(nil), args...),
	}

	if err := defaults.Set(&cfg.App); err != nil {
		return Config{}, fmt.Errorf("apply defaults: %w", err)
	}

	return cfg, nil
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg.App); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.App.Source == "catalog" {
		if cfg.App.Catalog.BaseURL == "" {
			return fmt.Errorf("catalog source requires -catalog-url or %s", envCatalogURL)
		}
		if cfg.App.Catalog.Token == "" {
			return fmt.Errorf("catalog source requires %s in the environment", envCatalogToken)
		}
	}
	return nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
