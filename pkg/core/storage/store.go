package storage

import (
	"errors"
	"fmt"

	"github.com/Tommo-L/neo-node/pkg/io"
)

// Storage engine names as used in the Storage.Engine setting.
const (
	LevelDBEngine = "LevelDBStore"
	BoltDBEngine  = "BoltDBStore"
	MemoryEngine  = "MemoryStore"
)

var (
	// ErrKeyNotFound is an error returned by Store implementations
	// when a certain key is not found.
	ErrKeyNotFound = errors.New("key not found")
	// ErrUnknownEngine is returned by NewStore for unsupported engine names.
	ErrUnknownEngine = errors.New("unknown storage engine")
)

// Store is the underlying KV backend of the node.
type Store interface {
	Get([]byte) ([]byte, error)
	Put(k, v []byte) error
	Delete(k []byte) error
	// Seek iterates over all key-value pairs with the given prefix in
	// ascending key order until f returns false. Key and value slices
	// should not be modified or retained.
	Seek(prefix []byte, f func(k, v []byte) bool) error
	Close() error
}

// NewStore creates storage of the given engine type located at path.
func NewStore(engine string, path string) (Store, error) {
	switch engine {
	case LevelDBEngine:
		return NewLevelDBStore(path)
	case BoltDBEngine:
		if err := io.MakeDirForFile(path, "BoltDB"); err != nil {
			return nil, err
		}
		return NewBoltDBStore(path)
	case MemoryEngine:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}
