package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultConfigName is the base name of the node configuration file.
	DefaultConfigName = "config"
	// NetworkEnv is the environment variable selecting configuration
	// profile, its value is put between the base name and extension, so
	// NEO_NETWORK=testnet makes the node look for config.testnet.json.
	NetworkEnv = "NEO_NETWORK"

	configExt = ".json"
)

// ConfigFileName returns the configuration file name for the given base name
// taking NetworkEnv into account.
func ConfigFileName(name string) string {
	env := strings.TrimSpace(os.Getenv(NetworkEnv))
	if env == "" {
		return name + configExt
	}
	return name + "." + env + configExt
}

// SearchDirs returns the directories that are checked for the configuration
// file in order of preference: the working directory, the directory of the
// executable as it was started and the directory of the real executable
// file with all symlinks resolved. Directories that can't be determined are
// omitted, duplicates are removed.
func SearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			dirs = append(dirs, filepath.Dir(resolved))
		}
	}
	return uniqueDirs(dirs)
}

func uniqueDirs(dirs []string) []string {
	var (
		res  = dirs[:0]
		seen = make(map[string]struct{}, len(dirs))
	)
	for _, d := range dirs {
		d = filepath.Clean(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		res = append(res, d)
	}
	return res
}

// LoadConfig looks for the configuration file with the given base name in
// dirs and parses the first one found. If there is no such file in any of
// dirs, an empty tree is returned, so all settings get their default values.
// A file that exists, but can't be read or parsed is an error.
func LoadConfig(name string, dirs []string) (*Section, error) {
	var (
		log  = zap.L()
		file = ConfigFileName(name)
	)
	for _, dir := range dirs {
		p := filepath.Join(dir, file)
		_, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no config file", zap.String("path", p))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("unable to check config file: %w", err)
		}
		log.Debug("loading config file", zap.String("path", p))
		s, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		configLoads.WithLabelValues(sourceFile).Inc()
		return s, nil
	}
	log.Debug("config file not found, using defaults", zap.String("file", file))
	configLoads.WithLabelValues(sourceDefaults).Inc()
	return &Section{}, nil
}
