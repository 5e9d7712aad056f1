package netmode

import (
	"fmt"
	"strconv"
)

const (
	// MainNet contains magic code used in the Neo main official network.
	MainNet Magic = 0x334f454e // NEO3
	// TestNet contains magic code used in the Neo testing network.
	TestNet Magic = 0x3554334e // N3T5
	// PrivNet contains magic code usually used for Neo private networks.
	PrivNet Magic = 56753 // docker privnet
	// UnitTestNet is a stub magic code used for testing purposes.
	UnitTestNet Magic = 42
)

// Magic describes the network the node will operate on.
type Magic uint32

// String implements the stringer interface.
func (n Magic) String() string {
	switch n {
	case PrivNet:
		return "privnet"
	case TestNet:
		return "testnet"
	case MainNet:
		return "mainnet"
	case UnitTestNet:
		return "unit_testnet"
	default:
		return "net 0x" + strconv.FormatUint(uint64(n), 16)
	}
}

// Hex returns the 8-digit uppercase hexadecimal form of the magic used to
// namespace per-network file paths.
func (n Magic) Hex() string {
	return fmt.Sprintf("%08X", uint32(n))
}

// FromString returns the well-known network for the given name as returned
// by String.
func FromString(s string) (Magic, bool) {
	switch s {
	case "privnet":
		return PrivNet, true
	case "testnet":
		return TestNet, true
	case "mainnet":
		return MainNet, true
	case "unit_testnet":
		return UnitTestNet, true
	}
	return 0, false
}
