package config

import (
	"testing"

	"github.com/Tommo-L/neo-node/pkg/config/netmode"
	"github.com/Tommo-L/neo-node/pkg/network"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsDefaults(t *testing.T) {
	s, err := NewSettings(new(Section), netmode.MainNet)
	require.NoError(t, err)
	require.Equal(t, Settings{
		Logger: LoggerSettings{
			Path: "Logs_334F454E",
		},
		Storage: StorageSettings{
			Engine: "LevelDBStore",
			Path:   "Data_LevelDB_334F454E",
		},
		P2P: P2PSettings{
			Port:                     10333,
			WsPort:                   10334,
			MinDesiredConnections:    network.DefaultMinDesiredConnections,
			MaxConnections:           network.DefaultMaxConnections,
			MaxConnectionsPerAddress: 3,
		},
		PluginURL: DefaultPluginURL,
	}, s)
}

func TestNewSettings(t *testing.T) {
	s, err := NewSettings(NewSection(map[string]any{
		"Logger": map[string]any{
			"Path":          "logs/{0}",
			"ConsoleOutput": "true",
			"Active":        true,
		},
		"Storage": map[string]any{
			"Engine": "BoltDBStore",
			"Path":   "chain_{0}.bolt",
		},
		"P2P": map[string]any{
			"Port":                     "20333",
			"WsPort":                   20334,
			"MinDesiredConnections":    5,
			"MaxConnections":           " 50 ",
			"MaxConnectionsPerAddress": 1,
		},
		"UnlockWallet": map[string]any{
			"Path":           "wallet.json",
			"Password":       " secret ",
			"StartConsensus": "True",
			"IsActive":       true,
		},
		"PluginURL": "https://example.com/{0}/{1}",
	}), netmode.Magic(0x334F454E))
	require.NoError(t, err)
	require.Equal(t, Settings{
		Logger: LoggerSettings{
			Path:          "logs/334F454E",
			ConsoleOutput: true,
			Active:        true,
		},
		Storage: StorageSettings{
			Engine: "BoltDBStore",
			Path:   "chain_334F454E.bolt",
		},
		P2P: P2PSettings{
			Port:                     20333,
			WsPort:                   20334,
			MinDesiredConnections:    5,
			MaxConnections:           50,
			MaxConnectionsPerAddress: 1,
		},
		UnlockWallet: UnlockWalletSettings{
			Path:           "wallet.json",
			Password:       " secret ",
			StartConsensus: true,
			IsActive:       true,
		},
		PluginURL: "https://example.com/{0}/{1}",
	}, s)

	u, err := s.PluginDownloadURL("RpcServer", "3.0.0")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/RpcServer/3.0.0", u)
}

func TestNewSettingsLoggerPathPerNetwork(t *testing.T) {
	sec := NewSection(map[string]any{"Logger": map[string]any{"Path": "logs/{0}"}})
	s, err := NewSettings(sec, netmode.TestNet)
	require.NoError(t, err)
	require.Equal(t, "logs/3554334E", s.Logger.Path)

	s, err = NewSettings(sec, netmode.UnitTestNet)
	require.NoError(t, err)
	require.Equal(t, "logs/0000002A", s.Logger.Path)
}

func TestNewSettingsUnlockWallet(t *testing.T) {
	t.Run("missing section", func(t *testing.T) {
		s, err := NewSettings(NewSection(map[string]any{}), netmode.MainNet)
		require.NoError(t, err)
		require.Equal(t, UnlockWalletSettings{}, s.UnlockWallet)
	})
	t.Run("partial section", func(t *testing.T) {
		s, err := NewSettings(NewSection(map[string]any{
			"UnlockWallet": map[string]any{"Path": "w.json"},
		}), netmode.MainNet)
		require.NoError(t, err)
		require.Equal(t, UnlockWalletSettings{Path: "w.json"}, s.UnlockWallet)
	})
	t.Run("bad bool", func(t *testing.T) {
		_, err := NewSettings(NewSection(map[string]any{
			"UnlockWallet": map[string]any{"IsActive": "yes"},
		}), netmode.MainNet)
		require.ErrorIs(t, err, ErrInvalidValue)
		require.ErrorContains(t, err, "UnlockWallet:IsActive")
	})
}

func TestNewSettingsInvalidValues(t *testing.T) {
	for name, values := range map[string]map[string]any{
		"P2P:Port":                     {"P2P": map[string]any{"Port": "port"}},
		"P2P:WsPort":                   {"P2P": map[string]any{"WsPort": 65536}},
		"P2P:MinDesiredConnections":    {"P2P": map[string]any{"MinDesiredConnections": "1.5"}},
		"P2P:MaxConnections":           {"P2P": map[string]any{"MaxConnections": "many"}},
		"P2P:MaxConnectionsPerAddress": {"P2P": map[string]any{"MaxConnectionsPerAddress": ""}},
		"Logger:ConsoleOutput":         {"Logger": map[string]any{"ConsoleOutput": "on"}},
		"Logger:Active":                {"Logger": map[string]any{"Active": 2}},
		"Logger:Path":                  {"Logger": map[string]any{"Path": "logs/{1}"}},
		"Storage:Path":                 {"Storage": map[string]any{"Path": "data/{0"}},
		"StartConsensus":               {"UnlockWallet": map[string]any{"StartConsensus": "no way"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewSettings(NewSection(values), netmode.MainNet)
			require.ErrorIs(t, err, ErrInvalidValue)
			require.ErrorContains(t, err, name)
		})
	}
}

func TestPluginDownloadURL(t *testing.T) {
	s, err := NewSettings(new(Section), netmode.MainNet)
	require.NoError(t, err)
	u, err := s.PluginDownloadURL("LevelDBStore", "3.6.0")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/neo-project/neo-modules/releases/download/v3.6.0/LevelDBStore.zip", u)

	s.PluginURL = "https://example.com/{2}"
	_, err = s.PluginDownloadURL("LevelDBStore", "3.6.0")
	require.Error(t, err)
}
