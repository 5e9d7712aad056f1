/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Tommo-L/neo-node/pkg/config"
	"github.com/Tommo-L/neo-node/pkg/config/netmode"
	"github.com/Tommo-L/neo-node/pkg/io"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Network is a set of flags for choosing the network to operate on
// (privnet/mainnet/testnet).
var Network = []cli.Flag{
	cli.BoolFlag{Name: "privnet, p", Usage: "use private network magic"},
	cli.BoolFlag{Name: "mainnet, m", Usage: "use mainnet network magic (default)"},
	cli.BoolFlag{Name: "testnet, t", Usage: "use testnet network magic"},
	cli.BoolFlag{Name: "unittest", Hidden: true},
}

// ConfigFile is a flag for commands that use node configuration and provide
// path to the specific config file instead of searching for config.json.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the node configuration file (by default config.json or config.$" + config.NetworkEnv + ".json is searched for in the working and executable directories)",
}

// Debug is a flag for commands that allow node in debug mode usage.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output, overrides configuration)",
}

// GetNetwork examines Context's flags and returns the appropriate network. It
// defaults to MainNet if no flags are given.
func GetNetwork(ctx *cli.Context) netmode.Magic {
	var net = netmode.MainNet
	if ctx.Bool("privnet") {
		net = netmode.PrivNet
	}
	if ctx.Bool("testnet") {
		net = netmode.TestNet
	}
	if ctx.Bool("unittest") {
		net = netmode.UnitTestNet
	}
	return net
}

// GetSettingsFromContext sets the network magic from the context flags and
// returns process-wide node settings. If --config-file is given, settings are
// initialized from this file, otherwise the default search is performed.
func GetSettingsFromContext(ctx *cli.Context) (config.Settings, error) {
	config.SetProtocolMagic(GetNetwork(ctx))
	if configFile := ctx.String("config-file"); len(configFile) != 0 {
		cfg, err := config.LoadFile(configFile)
		if err != nil {
			return config.Settings{}, err
		}
		if _, err := config.Initialize(cfg); err != nil {
			return config.Settings{}, err
		}
	}
	return config.Default()
}

// HandleLoggingParams builds the node logger. Logs are written to stdout if
// ConsoleOutput is set and into a daily file inside the Path directory if
// the logger is Active. Debug level is enabled if requested, info level is
// used otherwise. A nop logger is returned if there are no outputs.
func HandleLoggingParams(debug bool, cfg config.LoggerSettings) (*zap.Logger, *zap.AtomicLevel, error) {
	var level = zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	cc.OutputPaths = nil

	if cfg.ConsoleOutput {
		cc.OutputPaths = append(cc.OutputPaths, "stdout")
	}
	if cfg.Active {
		logPath := LogFilePath(cfg.Path, time.Now())
		if err := io.MakeDirForFile(logPath, "logger"); err != nil {
			return nil, nil, err
		}
		cc.OutputPaths = append(cc.OutputPaths, logPath)
	}
	if len(cc.OutputPaths) == 0 {
		return zap.NewNop(), &cc.Level, nil
	}

	log, err := cc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, &cc.Level, nil
}

// LogFilePath returns the path of the log file for the given day inside the
// log directory.
func LogFilePath(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format(time.DateOnly)+".log")
}
