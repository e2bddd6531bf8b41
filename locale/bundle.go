package locale

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"primkit/internal/logging"
)

var ErrMissingKey = errors.New("missing message key")

// MissingKeyError reports a key found in no locale on the fallback chain.
type MissingKeyError struct {
	Tag language.Tag
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing message key %q for locale %s", e.Key, e.Tag)
}

func (e *MissingKeyError) Unwrap() error {
	return ErrMissingKey
}

// Bundle holds messages per locale. Lookups walk from the requested tag
// through its parents to the root locale.
type Bundle struct {
	mu       sync.RWMutex
	messages map[language.Tag]map[string]string
}

func NewBundle() *Bundle {
	return &Bundle{messages: make(map[language.Tag]map[string]string)}
}

// Add merges messages into the set for tag. Later keys win.
func (b *Bundle) Add(tag language.Tag, messages map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	set, ok := b.messages[tag]
	if !ok {
		set = make(map[string]string, len(messages))
		b.messages[tag] = set
	}
	for k, v := range messages {
		set[k] = v
	}
}

func (b *Bundle) Lookup(tag language.Tag, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for t := tag; ; t = t.Parent() {
		if msg, ok := b.messages[t][key]; ok {
			return msg, nil
		}
		if t.IsRoot() {
			return "", &MissingKeyError{Tag: tag, Key: key}
		}
	}
}

// Format looks key up and applies args with locale aware number formatting.
func (b *Bundle) Format(tag language.Tag, key string, args ...any) (string, error) {
	msg, err := b.Lookup(tag, key)
	if err != nil {
		return "", err
	}
	return message.NewPrinter(tag).Sprintf(msg, args...), nil
}

// Tags lists the locales with messages, sorted by their string form.
func (b *Bundle) Tags() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	tags := make([]language.Tag, 0, len(b.messages))
	for t := range b.messages {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}

// LoadBundle reads every file in fsys matching pattern. The locale is the
// part of the base name after the first underscore, so messages_de_CH.yaml
// holds de-CH and messages.yaml holds the root locale. Nested YAML maps
// flatten to dotted keys.
func LoadBundle(fsys fs.FS, pattern string) (*Bundle, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log := logging.L("locale")
	b := NewBundle()
	for _, file := range files {
		tag, err := tagOf(file)
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		doc := make(map[string]any)
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "decode %s", file)
		}
		messages := make(map[string]string)
		flatten("", doc, messages)
		b.Add(tag, messages)
		log.Debug("bundle loaded", zap.String("file", file), zap.Stringer("locale", tag), zap.Int("messages", len(messages)))
	}
	return b, nil
}

func tagOf(file string) (language.Tag, error) {
	base := path.Base(file)
	base = strings.TrimSuffix(base, path.Ext(base))
	_, loc, ok := strings.Cut(base, "_")
	if !ok {
		return language.Und, nil
	}
	tag, err := Parse(loc)
	if err != nil {
		return language.Und, errors.Wrapf(err, "bundle file %s", file)
	}
	return tag, nil
}

func flatten(prefix string, v any, out map[string]string) {
	if m, ok := v.(map[string]any); ok {
		for k, child := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
		return
	}
	if v != nil {
		out[prefix] = fmt.Sprint(v)
	}
}
