package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hanko-field/emoji/internal/emoji"
)

const (
	defaultEnvFile               = ".env"
	defaultPort                  = "8080"
	defaultReadTimeout           = 15 * time.Second
	defaultWriteTimeout          = 30 * time.Second
	defaultIdleTimeout           = 120 * time.Second
	defaultEnvironment           = "local"
	defaultPlatformVersion       = "18.4"
	defaultTranslationsSource    = SourceEmbedded
	defaultTranslationsPrefix    = "translations"
	defaultTranslationCollection = "emojiTranslations"
	defaultIndexCacheTTL         = time.Hour
	defaultBuildVersion          = "dev"
	defaultBuildCommit           = "unknown"
)

// Translation sources understood by the loader wiring.
const (
	SourceEmbedded  = "embedded"
	SourceDir       = "dir"
	SourceGCS       = "gcs"
	SourceFirestore = "firestore"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server       ServerConfig
	App          AppConfig
	Platform     PlatformConfig
	Translations TranslationsConfig
	Firestore    FirestoreConfig
	Index        IndexConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AppConfig carries deployment metadata surfaced by health endpoints.
type AppConfig struct {
	Environment  string
	BuildVersion string
	CommitSHA    string
	ProjectID    string
}

// PlatformConfig holds the client platform assumed when a request names none.
type PlatformConfig struct {
	DefaultVersion emoji.Version
}

// TranslationsConfig selects where keyword translations are read from.
type TranslationsConfig struct {
	Source     string
	Dir        string
	Bucket     string
	Prefix     string
	Collection string
}

// FirestoreConfig stores database parameters.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
}

// IndexConfig tunes the search index cache.
type IndexConfig struct {
	CacheTTL time.Duration
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the application configuration by combining defaults, .env overrides
// and environment variables.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("config: context is required")
	}

	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	var invalid []string

	platform, err := emoji.ParseVersion(stringWithDefault(lookup, "EMOJI_PLATFORM_VERSION", defaultPlatformVersion))
	if err != nil {
		invalid = append(invalid, "Platform.DefaultVersion")
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "EMOJI_SERVER_PORT", defaultPort),
			ReadTimeout:  durationWithDefault(lookup, "EMOJI_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "EMOJI_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "EMOJI_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		App: AppConfig{
			Environment:  strings.ToLower(stringWithDefault(lookup, "EMOJI_ENVIRONMENT", defaultEnvironment)),
			BuildVersion: stringWithDefault(lookup, "EMOJI_BUILD_VERSION", defaultBuildVersion),
			CommitSHA:    stringWithDefault(lookup, "EMOJI_BUILD_COMMIT_SHA", defaultBuildCommit),
			ProjectID:    stringWithDefault(lookup, "GOOGLE_CLOUD_PROJECT", ""),
		},
		Platform: PlatformConfig{
			DefaultVersion: platform,
		},
		Translations: TranslationsConfig{
			Source:     strings.ToLower(stringWithDefault(lookup, "EMOJI_TRANSLATIONS_SOURCE", defaultTranslationsSource)),
			Dir:        stringWithDefault(lookup, "EMOJI_TRANSLATIONS_DIR", ""),
			Bucket:     stringWithDefault(lookup, "EMOJI_TRANSLATIONS_BUCKET", ""),
			Prefix:     strings.Trim(stringWithDefault(lookup, "EMOJI_TRANSLATIONS_PREFIX", defaultTranslationsPrefix), "/"),
			Collection: stringWithDefault(lookup, "EMOJI_TRANSLATIONS_COLLECTION", defaultTranslationCollection),
		},
		Firestore: FirestoreConfig{
			ProjectID:    stringWithDefault(lookup, "EMOJI_FIRESTORE_PROJECT_ID", ""),
			EmulatorHost: stringWithDefault(lookup, "EMOJI_FIRESTORE_EMULATOR_HOST", ""),
		},
		Index: IndexConfig{
			CacheTTL: durationWithDefault(lookup, "EMOJI_INDEX_CACHE_TTL", defaultIndexCacheTTL),
		},
	}

	// Firestore project defaults to the deployment project when unspecified.
	if cfg.Firestore.ProjectID == "" {
		cfg.Firestore.ProjectID = cfg.App.ProjectID
	}

	if err := validateConfig(cfg, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config, invalid []string) error {
	missing := append([]string(nil), invalid...)

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	}
	if cfg.Index.CacheTTL < 0 {
		missing = append(missing, "Index.CacheTTL")
	}

	switch cfg.Translations.Source {
	case SourceEmbedded:
	case SourceDir:
		if strings.TrimSpace(cfg.Translations.Dir) == "" {
			missing = append(missing, "Translations.Dir")
		}
	case SourceGCS:
		if strings.TrimSpace(cfg.Translations.Bucket) == "" {
			missing = append(missing, "Translations.Bucket")
		}
	case SourceFirestore:
		if strings.TrimSpace(cfg.Firestore.ProjectID) == "" {
			missing = append(missing, "Firestore.ProjectID")
		}
		if strings.TrimSpace(cfg.Translations.Collection) == "" {
			missing = append(missing, "Translations.Collection")
		}
	default:
		missing = append(missing, "Translations.Source")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
		if seconds, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
