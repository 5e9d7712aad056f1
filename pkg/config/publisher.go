package config

import (
	"sync/atomic"

	"github.com/Tommo-L/neo-node/pkg/config/netmode"
	"golang.org/x/sync/singleflight"
	"go.uber.org/zap"
)

// ApplicationSection is the top-level configuration section holding node
// settings.
const ApplicationSection = "ApplicationConfiguration"

// Publisher holds Settings that can be set only once. The zero value is
// ready to use with default file name, search directories and protocol
// magic. Publisher must not be copied after first use.
type Publisher struct {
	// Name is the configuration file base name, DefaultConfigName is used
	// if empty.
	Name string
	// Dirs returns candidate configuration directories, SearchDirs is used
	// if nil.
	Dirs func() []string
	// Magic returns the network magic used in path templates, ProtocolMagic
	// is used if nil.
	Magic func() netmode.Magic

	current atomic.Pointer[Settings]
	flight  singleflight.Group
}

// Initialize builds Settings from the given configuration tree and publishes
// them if nothing was published yet. It returns true if this call published
// its Settings and false if some Settings were already there. An error is
// returned if the tree contains malformed values, nothing is published then.
func (p *Publisher) Initialize(cfg *Section) (bool, error) {
	if p.current.Load() != nil {
		return false, nil
	}
	return p.install(cfg)
}

// Current returns published Settings. If there are none, it loads the
// configuration file (see LoadConfig) and publishes Settings built from it.
// Concurrent first calls share a single load, all callers get the same
// Settings.
func (p *Publisher) Current() (Settings, error) {
	if s := p.current.Load(); s != nil {
		return *s, nil
	}
	_, err, _ := p.flight.Do("default", func() (any, error) {
		if p.current.Load() != nil {
			return nil, nil
		}
		cfg, err := LoadConfig(p.name(), p.dirs())
		if err != nil {
			return nil, err
		}
		_, err = p.install(cfg)
		return nil, err
	})
	if err != nil {
		return Settings{}, err
	}
	return *p.current.Load(), nil
}

// IsSet reports whether Settings are published.
func (p *Publisher) IsSet() bool {
	return p.current.Load() != nil
}

func (p *Publisher) install(cfg *Section) (bool, error) {
	if cfg == nil {
		cfg = new(Section)
	}
	s, err := NewSettings(cfg.Section(ApplicationSection), p.magic())
	if err != nil {
		return false, err
	}
	if !p.current.CompareAndSwap(nil, &s) {
		return false, nil
	}
	setSettingsInfo(&s)
	zap.L().Debug("settings published",
		zap.String("storage", s.Storage.Engine),
		zap.Uint16("port", s.P2P.Port),
		zap.Uint16("ws_port", s.P2P.WsPort))
	return true, nil
}

func (p *Publisher) name() string {
	if p.Name == "" {
		return DefaultConfigName
	}
	return p.Name
}

func (p *Publisher) dirs() []string {
	if p.Dirs == nil {
		return SearchDirs()
	}
	return p.Dirs()
}

func (p *Publisher) magic() netmode.Magic {
	if p.Magic == nil {
		return ProtocolMagic()
	}
	return p.Magic()
}
