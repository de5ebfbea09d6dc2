package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Thaa": true, "Syrc": true, "Nkoo": true, "Adlm": true,
}

// ScriptDirection returns the direction in which tag's script is written.
func ScriptDirection(tag language.Tag) Direction {
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// Translator formats messages for one language. It is safe for concurrent
// use.
type Translator struct {
	tag      language.Tag
	printer  *message.Printer
	messages map[string]string
	fallback map[string]string

	mu       sync.Mutex
	collator *collate.Collator
}

// Translator returns a translator for the supported language nearest tag.
func (b *Bundle) Translator(tag language.Tag) *Translator {
	matched := b.Match(tag)
	return &Translator{
		tag:      matched,
		printer:  message.NewPrinter(matched, message.Catalog(b.builder)),
		messages: b.messages[matched],
		fallback: b.messages[b.tags[0]],
		collator: collate.New(matched, collate.IgnoreCase, collate.Loose),
	}
}

// LanguageTag returns the BCP 47 tag of the active language.
func (t *Translator) LanguageTag() string { return t.tag.String() }

// Tag returns the active language.
func (t *Translator) Tag() language.Tag { return t.tag }

// Direction returns the text direction of the active language.
func (t *Translator) Direction() Direction { return ScriptDirection(t.tag) }

// Translate returns the translation of key, falling back to the base
// language and then to key itself. The result is never formatted, so keys
// and translations may contain '%'.
func (t *Translator) Translate(key string) string {
	if v, ok := t.messages[key]; ok {
		return v
	}
	if v, ok := t.fallback[key]; ok {
		return v
	}
	return key
}

// Translatef looks up format in the catalog and formats it with args.
// Formats without a translation are used as they are.
func (t *Translator) Translatef(format string, args ...any) string {
	return t.printer.Sprintf(format, args...)
}

// Percentage formats a fraction (0.253) as a localized percentage with
// the given number of decimals.
func (t *Translator) Percentage(fraction float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return t.printer.Sprintf(fmt.Sprintf("%%.%df%%%%", precision), fraction*100)
}

// Number formats n with the language's digit grouping.
func (t *Translator) Number(n int) string {
	return t.printer.Sprintf("%d", n)
}

// Compare orders two strings case-insensitively using the language's
// collation rules.
func (t *Translator) Compare(a, b string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.collator.CompareString(a, b)
}
