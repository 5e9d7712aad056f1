package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Tommo-L/neo-node/pkg/config/netmode"
)

// ErrInvalidValue is returned when a configuration value is present, but
// can't be converted to the type of the setting.
var ErrInvalidValue = errors.New("invalid configuration value")

func invalidValue(s *Section, v string, err error) error {
	return fmt.Errorf("%w %q for %s: %w", ErrInvalidValue, v, s.Path(), err)
}

func getString(s *Section, key string, def string) string {
	if v, ok := s.Section(key).Value(); ok {
		return v
	}
	return def
}

func getBool(s *Section, key string, def bool) (bool, error) {
	leaf := s.Section(key)
	v, ok := leaf.Value()
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, invalidValue(leaf, v, err)
	}
	return b, nil
}

func getUint16(s *Section, key string, def uint16) (uint16, error) {
	leaf := s.Section(key)
	v, ok := leaf.Value()
	if !ok {
		return def, nil
	}
	u, err := strconv.ParseUint(strings.TrimSpace(v), 10, 16)
	if err != nil {
		return 0, invalidValue(leaf, v, err)
	}
	return uint16(u), nil
}

func getInt(s *Section, key string, def int) (int, error) {
	leaf := s.Section(key)
	v, ok := leaf.Value()
	if !ok {
		return def, nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, invalidValue(leaf, v, err)
	}
	return int(i), nil
}

// getMagicPath reads a path template and fills its only placeholder with the
// hexadecimal network magic.
func getMagicPath(s *Section, key string, def string, magic netmode.Magic) (string, error) {
	tmpl := getString(s, key, def)
	p, err := formatTemplate(tmpl, magic.Hex())
	if err != nil {
		return "", invalidValue(s.Section(key), tmpl, err)
	}
	return p, nil
}
