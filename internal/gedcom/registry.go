// Package gedcom holds the static GEDCOM reference data used by edit forms
// and page rendering: known tags, their labels, fact pick-lists, media
// types and _UID identifiers.
package gedcom

import (
	"html/template"
	"regexp"
	"sort"
	"strings"
)

// RecordType identifies a level-0 GEDCOM record, or one of the pseudo
// record types that have their own pick-list.
type RecordType string

const (
	RecordIndividual RecordType = "INDI"
	RecordFamily     RecordType = "FAM"
	RecordSource     RecordType = "SOUR"
	RecordRepository RecordType = "REPO"
	RecordMedia      RecordType = "OBJE"
	RecordNote       RecordType = "NOTE"
	RecordSubmitter  RecordType = "SUBM"

	PicklistPlace RecordType = "PLAC"
	PicklistName  RecordType = "NAME"
)

// mediaTypeTag is the element whose values are the media types.
const mediaTypeTag = "OBJE:FILE:FORM:TYPE"

// labelValueFormat is the catalog key for a label/value pair such as
// "Occupation: Farmer". Some languages change the punctuation.
const labelValueFormat = `<span class="label">%[1]s:</span> <span class="field" dir="auto">%[2]s</span>`

// Translator resolves source-language strings to the active language.
type Translator interface {
	Translate(key string) string
	Translatef(format string, args ...any) string
	Compare(a, b string) int
}

// Fact is a tag paired with its translated label.
type Fact struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// elementName matches the HTML element names LabelValue accepts.
var elementName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

var knownTags = func() map[string]struct{} {
	known := make(map[string]struct{}, len(allTags))
	for _, t := range allTags {
		known[t] = struct{}{}
	}
	return known
}()

// Registry answers tag lookups in one language.
type Registry struct {
	tr Translator
}

// NewRegistry creates a registry that translates through tr.
func NewRegistry(tr Translator) *Registry {
	return &Registry{tr: tr}
}

// AllTags returns every known tag in registry order.
func AllTags() []string {
	out := make([]string, len(allTags))
	copy(out, allTags)
	return out
}

// IsTag reports whether tag is one of the known tags. Matching is exact and
// case-sensitive.
func (r *Registry) IsTag(tag string) bool {
	_, ok := knownTags[tag]
	return ok
}

// Label returns the translated label for tag. Tags without a label are
// returned unchanged.
func (r *Registry) Label(tag string) string {
	if label, ok := englishLabels[tag]; ok {
		return r.tr.Translate(label)
	}
	if label, ok := mediaTypeElements[tag]; ok {
		return r.tr.Translate(label)
	}
	return tag
}

// LabelValue renders a label/value pair wrapped in element. Anything other
// than a plain lower-case element name is replaced by div. The value is
// escaped.
func (r *Registry) LabelValue(tag, value, element string) template.HTML {
	if !elementName.MatchString(element) {
		element = "div"
	}

	var b strings.Builder
	b.WriteString("<" + element + ` class="fact_` + template.HTMLEscapeString(tag) + `">`)
	b.WriteString(r.tr.Translatef(labelValueFormat,
		template.HTMLEscapeString(r.Label(tag)),
		template.HTMLEscapeString(value),
	))
	b.WriteString("</" + element + ">")
	return template.HTML(b.String())
}

// PicklistFacts returns the facts offered by the "add fact" control for a
// record type, sorted by label. Unknown record types yield an empty list.
func (r *Registry) PicklistFacts(rt RecordType) []Fact {
	tags := picklists[rt]
	facts := make([]Fact, 0, len(tags))
	for _, tag := range tags {
		facts = append(facts, Fact{Tag: tag, Label: r.Label(tag)})
	}
	sort.SliceStable(facts, func(i, j int) bool {
		return r.tr.Compare(facts[i].Label, facts[j].Label) < 0
	})
	return facts
}

// PicklistTypes returns the record types that have a pick-list.
func PicklistTypes() []RecordType {
	return []RecordType{RecordIndividual, RecordFamily, RecordSource, RecordRepository, PicklistPlace, PicklistName}
}

// FileFormTypeValue translates a value of OBJE:FILE:FORM:TYPE. Unknown
// values are returned unchanged.
func (r *Registry) FileFormTypeValue(value string) string {
	for _, mt := range mediaTypes {
		if mt.value == value && mt.label != "" {
			return r.tr.Translate(mt.label)
		}
	}
	return value
}

// FileFormTypes returns every selectable media type in registry order.
func (r *Registry) FileFormTypes() []Fact {
	out := make([]Fact, 0, len(mediaTypes))
	for _, mt := range mediaTypes {
		if mt.label == "" {
			continue
		}
		out = append(out, Fact{Tag: mt.value, Label: r.tr.Translate(mt.label)})
	}
	return out
}
