// Package i18n loads the embedded translation catalogs and provides
// per-language translators.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source language of every message key.
const BaseLocale = "en"

//go:embed catalogs/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is the set of catalogs loaded from disk.
type Bundle struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
	counts  map[language.Tag]int

	messages map[language.Tag]map[string]string
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// MustLoadEmbedded is LoadEmbedded for package initialisation and tests.
func MustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFromFS loads catalogs/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "catalogs/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.Make(BaseLocale)
	b := &Bundle{
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
		counts:   map[language.Tag]int{},
		messages: map[language.Tag]map[string]string{},
	}

	hasBase := false
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if strings.TrimSpace(f.Locale) == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", p)
		}
		if f.Locale != name {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, f.Locale, name)
		}
		tag, err := language.Parse(f.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		if f.Locale == BaseLocale {
			hasBase = true
		}

		for key, value := range f.Messages {
			if strings.TrimSpace(key) == "" {
				return nil, fmt.Errorf("catalog %s: message key cannot be blank", p)
			}
			if err := b.builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", p, key, err)
			}
		}
		b.tags = append(b.tags, tag)
		b.counts[tag] = len(f.Messages)
		b.messages[tag] = f.Messages
	}

	if !hasBase {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The base language is listed first so the matcher falls back to it.
	sort.SliceStable(b.tags, func(i, j int) bool { return b.tags[i] == base })
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Languages returns the languages that have a catalog.
func (b *Bundle) Languages() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// MessageCount returns the number of messages translated for tag.
func (b *Bundle) MessageCount(tag language.Tag) int {
	return b.counts[tag]
}

// Match returns the supported language closest to the requested ones.
func (b *Bundle) Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return b.tags[0]
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.tags[0]
	}
	return b.tags[idx]
}

// Parse parses s and matches it against the supported languages. ok is
// false when s is not a valid language tag.
func (b *Bundle) Parse(s string) (language.Tag, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return b.Match(tag), true
}
