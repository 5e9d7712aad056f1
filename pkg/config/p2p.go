package config

import "github.com/Tommo-L/neo-node/pkg/network"

// Default P2P settings.
const (
	DefaultP2PPort                  = 10333
	DefaultWsPort                   = 10334
	DefaultMaxConnectionsPerAddress = 3
)

// P2PSettings contains peer-to-peer networking limits.
type P2PSettings struct {
	Port                     uint16 `yaml:"Port"`
	WsPort                   uint16 `yaml:"WsPort"`
	MinDesiredConnections    int    `yaml:"MinDesiredConnections"`
	MaxConnections           int    `yaml:"MaxConnections"`
	MaxConnectionsPerAddress int    `yaml:"MaxConnectionsPerAddress"`
}

func newP2PSettings(s *Section) (P2PSettings, error) {
	var (
		res P2PSettings
		err error
	)
	if res.Port, err = getUint16(s, "Port", DefaultP2PPort); err != nil {
		return P2PSettings{}, err
	}
	if res.WsPort, err = getUint16(s, "WsPort", DefaultWsPort); err != nil {
		return P2PSettings{}, err
	}
	if res.MinDesiredConnections, err = getInt(s, "MinDesiredConnections", network.DefaultMinDesiredConnections); err != nil {
		return P2PSettings{}, err
	}
	if res.MaxConnections, err = getInt(s, "MaxConnections", network.DefaultMaxConnections); err != nil {
		return P2PSettings{}, err
	}
	if res.MaxConnectionsPerAddress, err = getInt(s, "MaxConnectionsPerAddress", DefaultMaxConnectionsPerAddress); err != nil {
		return P2PSettings{}, err
	}
	return res, nil
}
