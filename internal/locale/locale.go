// Package locale resolves locale identifiers such as "ar-IL" or "mas_TZ"
// to their language and territory.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/joescharf/gedref/internal/i18n"
)

var (
	ErrUnknownTerritory = errors.New("unknown territory")
	ErrInvalidLocale    = errors.New("invalid locale")
)

var territorySet = func() map[string]bool {
	m := make(map[string]bool, len(territoryCodes))
	for _, c := range territoryCodes {
		m[c] = true
	}
	return m
}()

// Territory is a country or region.
type Territory struct {
	code   string
	region language.Region
}

// TerritoryByCode returns the territory for a two-letter code. Lowercase
// codes are accepted.
func TerritoryByCode(code string) (Territory, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !territorySet[c] {
		return Territory{}, fmt.Errorf("%w: %q", ErrUnknownTerritory, code)
	}
	// Some reserved codes have no CLDR region; they keep their code as name.
	region, _ := language.ParseRegion(c)
	return Territory{code: c, region: region}, nil
}

// Territories returns every known territory ordered by code.
func Territories() []Territory {
	out := make([]Territory, 0, len(territoryCodes))
	for _, c := range territoryCodes {
		region, _ := language.ParseRegion(c)
		out = append(out, Territory{code: c, region: region})
	}
	return out
}

// Code returns the territory's ISO code, e.g. "TA".
func (t Territory) Code() string { return t.code }

// Name returns the territory's name in lang, falling back to the code.
func (t Territory) Name(lang language.Tag) string {
	if t.region == (language.Region{}) {
		return t.code
	}
	if name := display.Regions(lang).Name(t.region); name != "" {
		return name
	}
	return t.code
}

func (t Territory) String() string { return t.code }

// Locale is a language, optionally qualified by script and territory.
type Locale struct {
	tag       language.Tag
	territory Territory
}

// Parse parses a locale code. Underscores are accepted as separators. When
// the code names no territory the language's most likely one is used. A
// code without a language, such as und, has no territory.
func Parse(code string) (Locale, error) {
	s := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if s == "" {
		return Locale{}, fmt.Errorf("%w: empty code", ErrInvalidLocale)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, code, err)
	}

	if base, _ := tag.Base(); base.String() == "und" {
		return Locale{}, fmt.Errorf("locale %q: %w: no language", code, ErrUnknownTerritory)
	}
	region, conf := tag.Region()
	if conf == language.No {
		return Locale{}, fmt.Errorf("locale %q: %w", code, ErrUnknownTerritory)
	}
	territory, err := TerritoryByCode(region.String())
	if err != nil {
		return Locale{}, fmt.Errorf("locale %q: %w", code, err)
	}
	return Locale{tag: tag, territory: territory}, nil
}

// MustParse is Parse for known-good codes.
func MustParse(code string) Locale {
	l, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return l
}

// Known returns the locales that carry their own locale data, ordered by
// code.
func Known() []Locale {
	out := make([]Locale, 0, len(knownLocales))
	for _, c := range knownLocales {
		out = append(out, MustParse(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

// Code returns the canonical BCP 47 form, e.g. "mas-TZ".
func (l Locale) Code() string { return l.tag.String() }

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag { return l.tag }

// Language returns the language subtag, e.g. "mas".
func (l Locale) Language() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Territory returns the locale's territory.
func (l Locale) Territory() Territory { return l.territory }

// Direction returns the text direction of the locale's script.
func (l Locale) Direction() i18n.Direction { return i18n.ScriptDirection(l.tag) }

// Endonym returns the locale's name in its own language.
func (l Locale) Endonym() string {
	if name := display.Self.Name(l.tag); name != "" {
		return name
	}
	return l.Code()
}

func (l Locale) String() string { return l.Code() }
