// Package config loads id3tool's configuration from a Java-properties-style
// key=value file, the format cuelib-tools' PropertyHandlerFactory and
// BooleanPropertyHandler read TrackCutterConfiguration from. Values are
// converted through small PropertyHandler-like functions and may be
// overridden by ID3TOOL_-prefixed environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/magiconair/properties"
)

// Config holds the subset of TrackCutterConfiguration's options this tool
// exposes through a properties file, plus the logging level the ambient
// zerolog logger should run at.
type Config struct {
	OutputDirectory     string
	CutFileNameTemplate string
	EmbedTags           bool
	RedirectStderr      bool
	PostProcessCommand  string
	PregapThreshold     int
	RequestTimeout      time.Duration
	LogLevel            string

	// Unknown holds every key the file or environment defined that this
	// Config doesn't recognise, and every known key whose value failed to
	// convert; Load records them here and does not fail, per
	// PropertyHandlerFactory's tolerant style.
	Unknown map[string]string
}

// defaults mirrors TrackCutterConfiguration's field initialisers.
func defaults() *Config {
	return &Config{
		OutputDirectory:     ".",
		CutFileNameTemplate: "<artist>_<album>_<track>_<title>.wav",
		EmbedTags:           true,
		RedirectStderr:      false,
		PregapThreshold:     0,
		RequestTimeout:      30 * time.Second,
		LogLevel:            "info",
		Unknown:             map[string]string{},
	}
}

// knownKeys maps a properties-file key to the setter that applies it,
// mirroring the dispatch PropertyHandlerFactory.getPropertyHandler
// performs per declared type.
var knownKeys = map[string]func(cfg *Config, raw string) error{
	"output.directory":       func(c *Config, v string) error { c.OutputDirectory = v; return nil },
	"cutfile.name.template":  func(c *Config, v string) error { c.CutFileNameTemplate = v; return nil },
	"embed.tags":             boolHandler(func(c *Config, b bool) { c.EmbedTags = b }),
	"redirect.stderr":        boolHandler(func(c *Config, b bool) { c.RedirectStderr = b }),
	"postprocess.command":    func(c *Config, v string) error { c.PostProcessCommand = v; return nil },
	"pregap.threshold":       intHandler(func(c *Config, n int) { c.PregapThreshold = n }),
	"request.timeout":        durationHandler(func(c *Config, d time.Duration) { c.RequestTimeout = d }),
	"log.level":              func(c *Config, v string) error { c.LogLevel = v; return nil },
}

// boolHandler adapts a Boolean-typed setter into the uniform
// func(*Config, string) error shape, mirroring BooleanPropertyHandler's
// fromProperty(String) conversion (Boolean.valueOf semantics: anything
// other than a case-insensitive "true" is false, never an error).
func boolHandler(set func(*Config, bool)) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		set(cfg, strings.EqualFold(raw, "true"))
		return nil
	}
}

// intHandler adapts an int-typed setter; unlike BooleanPropertyHandler's
// permissive parse, a malformed integer is reported as an error since
// there is no sensible silent default for it.
func intHandler(set func(*Config, int)) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		set(cfg, n)
		return nil
	}
}

func durationHandler(set func(*Config, time.Duration)) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		set(cfg, d)
		return nil
	}
}

// Load reads path as a Java properties file via magiconair/properties,
// then layers ID3TOOL_<KEY> environment variables on top (dots become
// underscores, e.g. ID3TOOL_OUTPUT_DIRECTORY overrides
// "output.directory"), mirroring the file-then-environment precedence
// viper-style config loaders in the corpus use.
func Load(path string) (*Config, error) {
	cfg := defaults()

	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}
	for _, key := range props.Keys() {
		apply(cfg, key, props.MustGetString(key))
	}

	for _, key := range knownKeysSorted() {
		envKey := "ID3TOOL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if v, ok := os.LookupEnv(envKey); ok {
			apply(cfg, key, v)
		}
	}

	return cfg, nil
}

func apply(cfg *Config, key, value string) {
	handler, ok := knownKeys[key]
	if !ok {
		cfg.Unknown[key] = value
		return
	}
	if err := handler(cfg, value); err != nil {
		cfg.Unknown[key] = value
	}
}

func knownKeysSorted() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	return keys
}
