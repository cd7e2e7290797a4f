package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for workbill, stored as config.json in
// the data directory. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// DailyGoalMinutes is the target minutes per workday used for daily,
	// weekly and monthly quotas.
	DailyGoalMinutes int `json:"daily_goal_minutes"`
	// DataFile is an absolute path for the CSV data file. Empty means
	// work_chunks.csv inside the data directory.
	DataFile string `json:"data_file"`
}

const (
	// DefaultDailyGoalMinutes is an eight-hour workday.
	DefaultDailyGoalMinutes = 480
	// DataFileName is the default data file name inside the data directory.
	DataFileName = "work_chunks.csv"
	// EnvDataDir overrides the data directory location.
	EnvDataDir = "WORKBILL_DATA_DIR"

	defaultDataDirName = ".workbill"
)

// defaultConfig returns a Config pre-filled with the built-in defaults.
func defaultConfig() Config {
	return Config{
		DailyGoalMinutes: DefaultDailyGoalMinutes,
		DataFile:         "",
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// workbill configuration – config.json in the data directory
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise workbill behaviour.
{
  // Target minutes per workday, used for day/week/month quotas (480 = 8h).
  "daily_goal_minutes": 480,

  // Absolute path of the CSV data file. Leave empty to keep
  // work_chunks.csv inside the data directory (~/.workbill, or
  // $WORKBILL_DATA_DIR when set). The --file flag overrides both.
  "data_file": ""
}
`

// DataDir returns the directory holding the config and data files:
// $WORKBILL_DATA_DIR when set, otherwise ~/.workbill.
func DataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, defaultDataDirName), nil
}

// DataFilePath resolves the CSV data file location. Precedence: the override
// (normally the --file flag), then the configured data_file, then
// DataFileName inside the data directory.
func DataFilePath(cfg Config, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFileName), nil
}

// configFilePath returns the path of config.json inside the data directory.
func configFilePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file, creating it with annotated defaults on first
// run. Lines starting with // are treated as comments and stripped before
// JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.DailyGoalMinutes <= 0 {
		cfg.DailyGoalMinutes = DefaultDailyGoalMinutes
	}

	return cfg, nil
}

// writeDefault creates the data directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
