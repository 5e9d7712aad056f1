package network

const (
	// DefaultMinDesiredConnections is the number of peers the node tries to
	// keep connected when no other limit is configured.
	DefaultMinDesiredConnections = 10
	// DefaultMaxConnections is the default upper bound of simultaneously
	// connected peers.
	DefaultMaxConnections = DefaultMinDesiredConnections * 4
)
