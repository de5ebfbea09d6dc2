package gedcom

type mediaType struct {
	value string
	label string
}

// mediaTypes are the values of OBJE:FILE:FORM:TYPE. The blank entry is the
// "no type" option of the edit control and is not selectable on its own.
var mediaTypes = []mediaType{
	{"", ""},
	{"audio", "Audio"},
	{"book", "Book"},
	{"card", "Card"},
	{"certificate", "Certificate"},
	{"coat", "Coat of arms"},
	{"document", "Document"},
	{"electronic", "Electronic"},
	{"fiche", "Microfiche"},
	{"film", "Microfilm"},
	{"magazine", "Magazine"},
	{"manuscript", "Manuscript"},
	{"map", "Map"},
	{"newspaper", "Newspaper"},
	{"painting", "Painting"},
	{"photo", "Photo"},
	{"tombstone", "Tombstone"},
	{"video", "Video"},
	{"other", "Other"},
}

// mediaTypeElements label the media object structure that is not part of
// the tag list.
var mediaTypeElements = map[string]string{
	"OBJE:FILE":           "Filename",
	"OBJE:FILE:FORM":      "Format",
	"OBJE:FILE:FORM:TYPE": "Media type",
}
