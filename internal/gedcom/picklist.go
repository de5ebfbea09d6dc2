package gedcom

// picklists are the facts offered when adding to a record of each type.
var picklists = map[RecordType][]string{
	RecordIndividual: {
		"RESN", "NAME", "SEX", "BIRT", "CHR", "DEAT", "BURI", "CREM",
		"ADOP", "BAPM", "BARM", "BASM", "BLES", "CHRA", "CONF", "FCOM",
		"ORDN", "NATU", "EMIG", "IMMI", "CENS", "PROB", "WILL", "GRAD",
		"RETI", "EVEN", "CAST", "DSCR", "EDUC", "IDNO", "NATI", "NCHI",
		"NMR", "OCCU", "PROP", "RELI", "RESI", "SSN", "TITL", "FACT",
		"BAPL", "CONL", "ENDL", "SLGC", "SUBM", "ASSO", "ALIA", "ANCI",
		"DESI", "RFN", "AFN", "REFN", "RIN", "CHAN", "NOTE", "SHARED_NOTE",
		"SOUR", "OBJE",
		// Vendor extensions.
		"_BRTM", "_DEG", "_DNA", "_EYEC", "_FNRL", "_HAIR", "_HEIG", "_HNM",
		"_HOL", "_INTE", "_MDCL", "_MEDC", "_MILI", "_MILT", "_NAME", "_NAMS",
		"_NLIV", "_NMAR", "_PRMN", "_TODO", "_UID", "_WEIG", "_YART",
	},
	RecordFamily: {
		"RESN", "ANUL", "CENS", "DIV", "DIVF", "ENGA", "MARB", "MARC",
		"MARR", "MARL", "MARS", "RESI", "EVEN", "NCHI", "SUBM", "SLGS",
		"REFN", "RIN", "CHAN", "NOTE", "SHARED_NOTE", "SOUR", "OBJE",
		// Vendor extensions.
		"_NMR", "MARR_CIVIL", "MARR_RELIGIOUS", "MARR_PARTNERS", "MARR_UNKNOWN", "_COML", "_MBON", "_MARI",
		"_SEPR", "_TODO",
	},
	RecordSource: {
		"DATA", "AUTH", "TITL", "ABBR", "PUBL", "TEXT", "REPO", "REFN",
		"RIN", "CHAN", "NOTE", "SHARED_NOTE", "OBJE", "RESN",
	},
	RecordRepository: {
		"NAME", "ADDR", "PHON", "EMAIL", "FAX", "WWW", "NOTE", "SHARED_NOTE",
		"REFN", "RIN", "CHAN", "RESN",
	},
	PicklistPlace: {
		"FONE", "ROMN",
		// Vendor extensions.
		"_GOV", "_HEB",
	},
	PicklistName: {
		"FONE", "ROMN",
		// Vendor extensions.
		"_HEB", "_AKA", "_MARNM",
	},
}
