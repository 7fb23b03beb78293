package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssprune.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSPRUNE_* prefix)
	if err := k.Load(env.Provider("CSSPRUNE_", ".", func(s string) string {
		// CSSPRUNE_SCAN_STYLESHEET -> scan.stylesheet
		// CSSPRUNE_SCAN_STRICT -> scan.strict
		// CSSPRUNE_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSPRUNE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildScanConfig constructs the library's Config struct from koanf state.
func buildScanConfig() cssprune.Config {
	config := cssprune.Config{
		Concurrency: getIntWithFallback("concurrency", "scan.concurrency", 0),
	}

	// Content patterns: flag key first, then config key
	var globs []string
	if patterns := k.Strings("content"); len(patterns) > 0 {
		globs = patterns
	} else if patterns := k.Strings("scan.content"); len(patterns) > 0 {
		globs = patterns
	} else {
		globs = []string{"web/**/*.{html,templ,go}"}
	}
	for _, glob := range globs {
		config.Patterns = append(config.Patterns, cssprune.SourcePattern{Glob: glob})
	}

	// Raw entries only come from the config file.
	for _, item := range rawList(k.Get("scan.raw")) {
		content, _ := item["content"].(string)
		extension, _ := item["extension"].(string)
		if content == "" {
			continue
		}
		config.Patterns = append(config.Patterns, cssprune.SourcePattern{
			Raw:       content,
			Extension: extension,
		})
	}

	return config
}

// buildSafelistEntries parses the safelist section, which mixes literal
// strings and pattern rules:
//
//	safelist:
//	  - bg-red-500
//	  - pattern: "bg-(red|green)-(100|200)"
//	    variants: [hover]
func buildSafelistEntries() []cssprune.SafelistEntry {
	raw, ok := k.Get("safelist").([]interface{})
	if !ok {
		return nil
	}

	var entries []cssprune.SafelistEntry
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			entries = append(entries, cssprune.SafelistEntry{Literal: v})
		case map[string]interface{}:
			entry := cssprune.SafelistEntry{}
			entry.Pattern, _ = v["pattern"].(string)
			if variants, ok := v["variants"].([]interface{}); ok {
				for _, variant := range variants {
					if s, ok := variant.(string); ok {
						entry.Variants = append(entry.Variants, s)
					}
				}
			}
			if entry.Pattern != "" {
				entries = append(entries, entry)
			}
		}
	}

	return entries
}

// rawList normalizes a koanf list-of-maps value.
func rawList(value interface{}) []map[string]interface{} {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}
	var out []map[string]interface{}
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
