package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
)

const (
	EnvPrefix = "STEPFETCH"
	FileName  = "stepfetch.yaml"
)

// Load builds the run configuration from the defaults, an optional config
// file and STEPFETCH_ environment variables, in that order of precedence.
// An empty path searches the working dir, ./configs and ~/.stepfetch for
// stepfetch.yaml; not finding one there is fine. An explicit path must exist.
func Load(path string) (Config, error) {
	var loaded Config
	err := fig.Load(&loaded, fileOptions(path)...)
	if errors.Is(err, fig.ErrFileNotFound) && path == "" {
		loaded = Config{}
		err = LoadEnv(&loaded)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Default().Merge(loaded), nil
}

// LoadEnv reads only STEPFETCH_ environment variables into cfg.
func LoadEnv(cfg *Config) error {
	return fig.Load(cfg, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
}

func fileOptions(path string) []fig.Option {
	if path != "" {
		return []fig.Option{
			fig.File(filepath.Base(path)),
			fig.Dirs(filepath.Dir(path)),
			fig.UseEnv(EnvPrefix),
		}
	}
	dirs := []string{".", "configs"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".stepfetch"))
	}
	return []fig.Option{fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix)}
}
