package config

import (
	"sync/atomic"

	"github.com/Tommo-L/neo-node/pkg/config/netmode"
)

var (
	protocolMagic atomic.Uint32

	defaultPublisher = new(Publisher)
)

func init() {
	protocolMagic.Store(uint32(netmode.MainNet))
}

// SetProtocolMagic sets the network magic used by the process-wide Settings.
// It only affects Settings that are not yet published.
func SetProtocolMagic(m netmode.Magic) {
	protocolMagic.Store(uint32(m))
}

// ProtocolMagic returns the network magic of the node, netmode.MainNet
// unless changed with SetProtocolMagic.
func ProtocolMagic() netmode.Magic {
	return netmode.Magic(protocolMagic.Load())
}

// Initialize publishes process-wide Settings built from the given
// configuration tree, see Publisher.Initialize.
func Initialize(cfg *Section) (bool, error) {
	return defaultPublisher.Initialize(cfg)
}

// Default returns process-wide Settings, loading them from the
// configuration file on first use, see Publisher.Current.
func Default() (Settings, error) {
	return defaultPublisher.Current()
}
