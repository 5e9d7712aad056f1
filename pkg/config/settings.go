package config

import (
	"fmt"

	"github.com/Tommo-L/neo-node/pkg/config/netmode"
)

// DefaultPluginURL is the plugin download URL template, {0} is the plugin
// name and {1} is its version.
const DefaultPluginURL = "https://github.com/neo-project/neo-modules/releases/download/v{1}/{0}.zip"

// Settings is the complete node configuration. It only contains values, so
// copies of it are independent and safe for concurrent use.
type Settings struct {
	Logger       LoggerSettings       `yaml:"Logger"`
	Storage      StorageSettings      `yaml:"Storage"`
	P2P          P2PSettings          `yaml:"P2P"`
	UnlockWallet UnlockWalletSettings `yaml:"UnlockWallet"`
	PluginURL    string               `yaml:"PluginURL"`
}

// NewSettings binds the application configuration section to Settings. Magic
// is substituted into the path templates of the Logger and Storage sections.
// Missing values are replaced with defaults, values that are present but
// malformed lead to an error wrapping ErrInvalidValue.
func NewSettings(s *Section, magic netmode.Magic) (Settings, error) {
	var (
		res Settings
		err error
	)
	if res.Logger, err = newLoggerSettings(s.Section("Logger"), magic); err != nil {
		return Settings{}, err
	}
	if res.Storage, err = newStorageSettings(s.Section("Storage"), magic); err != nil {
		return Settings{}, err
	}
	if res.P2P, err = newP2PSettings(s.Section("P2P")); err != nil {
		return Settings{}, err
	}
	if res.UnlockWallet, err = newUnlockWalletSettings(s.Section("UnlockWallet")); err != nil {
		return Settings{}, err
	}
	res.PluginURL = getString(s, "PluginURL", DefaultPluginURL)
	return res, nil
}

// PluginDownloadURL returns the download location of the given plugin version.
func (s Settings) PluginDownloadURL(name, version string) (string, error) {
	u, err := formatTemplate(s.PluginURL, name, version)
	if err != nil {
		return "", fmt.Errorf("bad PluginURL: %w", err)
	}
	return u, nil
}
