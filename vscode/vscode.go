// Package vscode syncs environment variables into the VS Code user
// settings.json, editing only the claudeCode.environmentVariables entry.
// Everything else in the file — other settings, comments, formatting — is
// preserved byte for byte, and writes replace the file atomically.
package vscode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/dhawalhost/jsoncedit"
)

// SettingsKey is the VS Code setting owned by this package.
const SettingsKey = "claudeCode.environmentVariables"

// ErrNoSettingsDir is returned when no settings.json location can be derived
// for the current platform and no override was configured.
var ErrNoSettingsDir = errors.New("cannot determine VS Code settings location")

// settingsPath is SettingsKey with its dots escaped so gjson and sjson treat
// it as a single object key rather than a path.
var settingsPath = strings.ReplaceAll(SettingsKey, ".", `\.`)

// Config carries the caller's knobs. The zero value targets the platform's
// default settings.json and logs nothing.
type Config struct {
	// SettingsPath overrides the platform-default settings.json location.
	SettingsPath string

	// Logger receives operational messages; nil disables logging.
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Path returns the settings.json location this Config operates on.
func (c Config) Path() (string, error) {
	if p := strings.TrimSpace(c.SettingsPath); p != "" {
		return p, nil
	}
	return defaultSettingsPath()
}

func defaultSettingsPath() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			return "", fmt.Errorf("%w: APPDATA is not set", ErrNoSettingsDir)
		}
		return filepath.Join(appdata, "Code", "User", "settings.json"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoSettingsDir, err)
		}
		return filepath.Join(home, "Library", "Application Support", "Code", "User", "settings.json"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoSettingsDir, err)
		}
		return filepath.Join(home, ".config", "Code", "User", "settings.json"), nil
	}
}

// EnvPairs converts a flat environment map into the name/value array shape of
// the setting, ordered by name so repeated syncs are deterministic.
func EnvPairs(env map[string]string) []jsoncedit.Pair {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]jsoncedit.Pair, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, jsoncedit.Pair{Name: name, Value: env[name]})
	}
	return pairs
}

// document is the baseline read of a settings file: the raw bytes plus, when
// the comment-stripped text parses as JSON, a structured view. The structured
// view is only ever used for reading; writes always go through text-level
// patching of raw.
type document struct {
	raw        []byte
	structured gjson.Result
	parsed     bool
}

func (d document) empty() bool {
	return len(bytes.TrimSpace(d.raw)) == 0
}

func readDocument(path string) (document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return document{}, nil
		}
		return document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc := document{raw: raw}
	stripped := jsoncedit.StripComments(raw)
	if gjson.ValidBytes(stripped) {
		doc.structured = gjson.ParseBytes(stripped)
		doc.parsed = true
	}
	return doc, nil
}

// Sync writes env into the claudeCode.environmentVariables setting. The write
// is skipped when the setting already holds the desired value; when it
// happens, it replaces the file atomically.
func Sync(cfg Config, env map[string]string) error {
	log := cfg.logger()
	path, err := cfg.Path()
	if err != nil {
		return err
	}
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	pairs := EnvPairs(env)

	var out []byte
	if doc.empty() {
		// Nothing to preserve: build a fresh document instead of patching text.
		desired, err := json.Marshal(pairs)
		if err != nil {
			return fmt.Errorf("encode %s: %w", SettingsKey, err)
		}
		fresh, err := sjson.SetRawBytes([]byte("{}"), settingsPath, desired)
		if err != nil {
			return fmt.Errorf("build fresh settings: %w", err)
		}
		out = pretty.PrettyOptions(fresh, &pretty.Options{Indent: "    "})
	} else {
		if doc.parsed {
			current := doc.structured.Get(settingsPath)
			if current.Exists() && pairsEqual(current, pairs) {
				log.Info("environment variables already in sync", zap.String("path", path))
				return nil
			}
		} else {
			log.Warn("settings.json does not parse even with comments stripped, patching text anyway",
				zap.String("path", path))
		}
		out, err = jsoncedit.Set(doc.raw, SettingsKey, pairs)
		if err != nil {
			return fmt.Errorf("update %s: %w", path, err)
		}
	}

	if err := atomicWrite(path, out); err != nil {
		return err
	}
	log.Info("synced environment variables to VS Code settings",
		zap.String("path", path), zap.Int("count", len(pairs)))
	return nil
}

// pairsEqual reports whether the setting's current array holds exactly the
// desired name/value pairs. Elements are compared as decoded strings, so
// escaping differences between writers (< vs a literal <) do not force a
// rewrite.
func pairsEqual(current gjson.Result, pairs []jsoncedit.Pair) bool {
	if !current.IsArray() {
		return false
	}
	arr := current.Array()
	if len(arr) != len(pairs) {
		return false
	}
	for i, el := range arr {
		if el.Get("name").String() != pairs[i].Name || el.Get("value").String() != pairs[i].Value {
			return false
		}
	}
	return true
}

// Clear deletes the claudeCode.environmentVariables setting. A missing file
// or absent key is a no-op and touches nothing on disk.
func Clear(cfg Config) error {
	log := cfg.logger()
	path, err := cfg.Path()
	if err != nil {
		return err
	}
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	if doc.empty() {
		return nil
	}

	out, err := jsoncedit.Remove(doc.raw, SettingsKey)
	if err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}
	if bytes.Equal(out, doc.raw) {
		return nil
	}

	if err := atomicWrite(path, out); err != nil {
		return err
	}
	log.Info("removed environment variables from VS Code settings", zap.String("path", path))
	return nil
}
