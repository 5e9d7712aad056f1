package config

import "github.com/Tommo-L/neo-node/pkg/config/netmode"

const (
	// DefaultStorageEngine is the storage backend used when none is configured.
	DefaultStorageEngine = "LevelDBStore"
	// DefaultStoragePath is the data location template used when none is
	// configured.
	DefaultStoragePath = "Data_LevelDB_{0}"
)

// StorageSettings selects the storage backend of the node.
type StorageSettings struct {
	Engine string `yaml:"Engine"`
	Path   string `yaml:"Path"`
}

func newStorageSettings(s *Section, magic netmode.Magic) (StorageSettings, error) {
	p, err := getMagicPath(s, "Path", DefaultStoragePath, magic)
	if err != nil {
		return StorageSettings{}, err
	}
	return StorageSettings{
		Engine: getString(s, "Engine", DefaultStorageEngine),
		Path:   p,
	}, nil
}
