package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Run contains configuration for the convergence engine.
type Run struct {
	// HashWorkers bounds concurrent file hashing within one fingerprint
	// computation. Zero means min(NumCPU, 8).
	HashWorkers int `toml:"hash_workers"`
	// MaxPasses bounds the fixpoint loop. Zero keeps the loop unbounded,
	// matching the original retry-until-quiescent behavior.
	MaxPasses int `toml:"max_passes"`
}

// Paths contains directory overrides.
type Paths struct {
	// CacheDir overrides the state/lock directory. Empty means a .reflow
	// directory beside the taskfile.
	CacheDir string `toml:"cache_dir"`
}

// Config encapsulates all reflow tool settings.
type Config struct {
	Logging Logging `toml:"logging"`
	Run     Run     `toml:"run"`
	Paths   Paths   `toml:"paths"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/reflow/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults apply. The returned path is where the config was (or
// would be) read from.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("reflow.toml")
	if err != nil {
		return "", false, err
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

// CacheDirFor resolves the cache directory for a taskfile path, honoring the
// configured override.
func (c *Config) CacheDirFor(taskfilePath string) string {
	if c.Paths.CacheDir != "" {
		return c.Paths.CacheDir
	}
	return filepath.Join(filepath.Dir(taskfilePath), ".reflow")
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if len(pathValue) > 0 && pathValue[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath resolves ~ and relative segments in a user-supplied path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
