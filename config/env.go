package config

import (
	"os"
	"strings"
)

// ApplyEnv overlays PREFIX_A_B=value as property a.b, leaving final
// entries untouched.
func (s *Store) ApplyEnv(prefix string) MergeReport {
	env := NewStore(WithLogger(s.logger))
	head := strings.ToUpper(prefix) + "_"
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, head) || len(key) == len(head) {
			continue
		}
		name := strings.ToLower(strings.ReplaceAll(key[len(head):], "_", "."))
		env.props[name] = Property{Name: name, Values: []string{value}, Source: "env:" + key}
	}
	return Merge(s, env, OverwriteUnlessFinal)
}
