package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tommo-L/neo-node/pkg/config"
	"github.com/Tommo-L/neo-node/pkg/config/netmode"
	"github.com/Tommo-L/neo-node/pkg/core/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testSettings(t *testing.T, engine string) config.Settings {
	cfg, err := config.NewSettings(config.NewSection(map[string]any{
		"Storage": map[string]any{
			"Engine": engine,
			"Path":   filepath.Join(t.TempDir(), "chain_{0}"),
		},
		"UnlockWallet": map[string]any{
			"Path":     "wallet.json",
			"IsActive": true,
		},
	}), netmode.UnitTestNet)
	require.NoError(t, err)
	return cfg
}

func TestRunNode(t *testing.T) {
	for _, engine := range []string{storage.LevelDBEngine, storage.BoltDBEngine, storage.MemoryEngine} {
		t.Run(engine, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			require.NoError(t, runNode(ctx, testSettings(t, engine), zaptest.NewLogger(t), "", ""))
		})
	}
}

func TestRunNodeUnknownEngine(t *testing.T) {
	err := runNode(context.Background(), testSettings(t, "RocksDBStore"), zaptest.NewLogger(t), "", "")
	require.ErrorContains(t, err, "could not initialize storage")
}
