package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyDelimiter separates section keys in paths like "ApplicationConfiguration:P2P:Port".
const KeyDelimiter = ":"

// Section is a node of the raw configuration tree. It has a key, an optional
// scalar value and a set of named children. Keys are matched
// case-insensitively. The tree is never modified once built, so it can be
// shared between goroutines.
type Section struct {
	key      string
	path     string
	value    *string
	children []*Section
	index    map[string]*Section
}

// ParseSection parses JSON or YAML document into a configuration tree. An
// empty document yields an empty tree.
func ParseSection(data []byte) (*Section, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	root := &Section{}
	if doc.Kind == 0 {
		return root, nil
	}
	n := &doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return root, nil
		}
		n = n.Content[0]
	}
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch {
	case n.Kind == yaml.MappingNode:
	case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null":
		return root, nil
	default:
		return nil, errors.New("failed to parse configuration: document root is not a mapping")
	}
	if err := root.fill(n); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return root, nil
}

// LoadFile reads and parses the configuration file at the given path.
func LoadFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	s, err := ParseSection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// NewSection builds a configuration tree from already loaded values. Nested
// maps become sections, slices become sections keyed by element index and
// everything else is stored as its fmt.Sprint representation. Nil values
// are treated as missing.
func NewSection(values map[string]any) *Section {
	root := &Section{}
	root.fillMap(values)
	return root
}

// Key returns the last component of the section path.
func (s *Section) Key() string {
	return s.key
}

// Path returns the full colon-delimited path of the section.
func (s *Section) Path() string {
	return s.path
}

// Value returns the scalar value of the section and whether it's set.
func (s *Section) Value() (string, bool) {
	if s.value == nil {
		return "", false
	}
	return *s.value, true
}

// Exists reports whether the section or any of its descendants has a value.
func (s *Section) Exists() bool {
	if s.value != nil {
		return true
	}
	for _, c := range s.children {
		if c.Exists() {
			return true
		}
	}
	return false
}

// Children returns the direct children of the section in document order.
func (s *Section) Children() []*Section {
	res := make([]*Section, len(s.children))
	copy(res, s.children)
	return res
}

// Section returns the child section for the given key, it can be a
// colon-delimited path. It never returns nil, a missing section is returned
// as an empty one that doesn't exist.
func (s *Section) Section(key string) *Section {
	cur := s
	for _, k := range strings.Split(key, KeyDelimiter) {
		next, ok := cur.index[strings.ToLower(k)]
		if !ok {
			return &Section{key: lastKey(key), path: joinPath(s.path, key)}
		}
		cur = next
	}
	return cur
}

func (s *Section) fill(n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: non-scalar key in %q", k.Line, s.path)
			}
			if k.ShortTag() == "!!merge" {
				if err := s.fill(n.Content[i+1]); err != nil {
					return err
				}
				continue
			}
			if err := s.child(k.Value).fill(n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			if err := s.child(strconv.Itoa(i)).fill(c); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		if n.ShortTag() != "!!null" {
			v := n.Value
			s.value = &v
		}
	}
	return nil
}

func (s *Section) fillMap(values map[string]any) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.child(k).fillAny(values[k])
	}
}

func (s *Section) fillAny(v any) {
	switch v := v.(type) {
	case nil:
	case map[string]any:
		s.fillMap(v)
	case []any:
		for i, e := range v {
			s.child(strconv.Itoa(i)).fillAny(e)
		}
	case []string:
		for i, e := range v {
			s.child(strconv.Itoa(i)).fillAny(e)
		}
	default:
		str := fmt.Sprint(v)
		s.value = &str
	}
}

// child returns an existing child with the given key or creates a new one.
func (s *Section) child(key string) *Section {
	lk := strings.ToLower(key)
	if c, ok := s.index[lk]; ok {
		return c
	}
	if s.index == nil {
		s.index = make(map[string]*Section)
	}
	c := &Section{key: key, path: joinPath(s.path, key)}
	s.index[lk] = c
	s.children = append(s.children, c)
	return c
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + KeyDelimiter + key
}

func lastKey(path string) string {
	if i := strings.LastIndex(path, KeyDelimiter); i >= 0 {
		return path[i+1:]
	}
	return path
}
