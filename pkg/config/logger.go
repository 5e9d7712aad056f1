package config

import "github.com/Tommo-L/neo-node/pkg/config/netmode"

// DefaultLogPath is the log directory template used when none is configured.
const DefaultLogPath = "Logs_{0}"

// LoggerSettings contains node logging settings.
type LoggerSettings struct {
	// Path is the log directory with the network magic already substituted.
	Path          string `yaml:"Path"`
	ConsoleOutput bool   `yaml:"ConsoleOutput"`
	// Active enables logging into files under Path.
	Active bool `yaml:"Active"`
}

func newLoggerSettings(s *Section, magic netmode.Magic) (LoggerSettings, error) {
	var (
		res LoggerSettings
		err error
	)
	res.Path, err = getMagicPath(s, "Path", DefaultLogPath, magic)
	if err != nil {
		return LoggerSettings{}, err
	}
	res.ConsoleOutput, err = getBool(s, "ConsoleOutput", false)
	if err != nil {
		return LoggerSettings{}, err
	}
	res.Active, err = getBool(s, "Active", false)
	if err != nil {
		return LoggerSettings{}, err
	}
	return res, nil
}
