package gedcom

// allTags lists every tag that has a label, including compound
// PARENT:CHILD tags, vendor extensions and internal pseudo-tags.
var allTags = []string{
	"ABBR",
	"ADDR",
	"ADR1",
	"ADR2",
	"ADOP",
	"ADOP:DATE",
	"ADOP:PLAC",
	"AFN",
	"AGE",
	"AGNC",
	"ALIA",
	"ANCE",
	"ANCI",
	"ANUL",
	"ASSO",
	"AUTH",
	"BAPL",
	"BAPL:DATE",
	"BAPL:PLAC",
	"BAPM",
	"BAPM:DATE",
	"BAPM:PLAC",
	"BARM",
	"BARM:DATE",
	"BARM:PLAC",
	"BASM",
	"BASM:DATE",
	"BASM:PLAC",
	"BIRT",
	"BIRT:DATE",
	"BIRT:PLAC",
	"BLES",
	"BLES:DATE",
	"BLES:PLAC",
	"BLOB",
	"BURI",
	"BURI:DATE",
	"BURI:PLAC",
	"CALN",
	"CAST",
	"CAUS",
	"CEME",
	"CENS",
	"CENS:DATE",
	"CENS:PLAC",
	"CHAN",
	"CHAN:DATE",
	"CHAN:_WT_USER",
	"CHAR",
	"CHIL",
	"CHR",
	"CHR:DATE",
	"CHR:PLAC",
	"CHRA",
	"CITN",
	"CITY",
	"COMM",
	"CONC",
	"CONT",
	"CONF",
	"CONF:DATE",
	"CONF:PLAC",
	"CONL",
	"COPR",
	"CORP",
	"CREM",
	"CREM:DATE",
	"CREM:PLAC",
	"CTRY",
	"DATA",
	"DATA:DATE",
	"DATE",
	"DEAT",
	"DEAT:CAUS",
	"DEAT:DATE",
	"DEAT:PLAC",
	"DESC",
	"DESI",
	"DEST",
	"DIV",
	"DIVF",
	"DSCR",
	"EDUC",
	"EDUC:AGNC",
	"EMAI",
	"EMAIL",
	"EMAL",
	"EMIG",
	"EMIG:DATE",
	"EMIG:PLAC",
	"ENDL",
	"ENDL:DATE",
	"ENDL:PLAC",
	"ENGA",
	"ENGA:DATE",
	"ENGA:PLAC",
	"EVEN",
	"EVEN:DATE",
	"EVEN:PLAC",
	"EVEN:TYPE",
	"FACT",
	"FACT:TYPE",
	"FAM",
	"FAMC",
	"FAMF",
	"FAMS",
	"FAX",
	"FCOM",
	"FCOM:DATE",
	"FCOM:PLAC",
	"FILE",
	"FONE",
	"FORM",
	"GEDC",
	"GIVN",
	"GRAD",
	"HEAD",
	"HUSB",
	"IDNO",
	"IMMI",
	"IMMI:DATE",
	"IMMI:PLAC",
	"INDI",
	"INFL",
	"LANG",
	"LATI",
	"LEGA",
	"LONG",
	"MAP",
	"MARB",
	"MARB:DATE",
	"MARB:PLAC",
	"MARR_CIVIL",
	"MARR_PARTNERS",
	"MARR_RELIGIOUS",
	"MARR_UNKNOWN",
	"MARC",
	"MARL",
	"MARR",
	"MARR:DATE",
	"MARR:PLAC",
	"MARS",
	"MEDI",
	"NAME",
	"NAME:FONE",
	"NAME:_HEB",
	"NATI",
	"NATU",
	"NATU:DATE",
	"NATU:PLAC",
	"NCHI",
	"NICK",
	"NMR",
	"NOTE",
	"NPFX",
	"NSFX",
	"OBJE",
	"OCCU",
	"OCCU:AGNC",
	"ORDI",
	"ORDN",
	"ORDN:AGNC",
	"ORDN:DATE",
	"ORDN:PLAC",
	"PAGE",
	"PEDI",
	"PHON",
	"PLAC",
	"PLAC:FONE",
	"PLAC:ROMN",
	"PLAC:_HEB",
	"POST",
	"PROB",
	"PROP",
	"PUBL",
	"QUAY",
	"REFN",
	"RELA",
	"RELI",
	"REPO",
	"RESI",
	"RESI:DATE",
	"RESI:PLAC",
	"RESN",
	"RETI",
	"RETI:AGNC",
	"RFN",
	"RIN",
	"ROLE",
	"ROMN",
	"SERV",
	"SEX",
	"SHARED_NOTE",
	"SLGC",
	"SLGC:DATE",
	"SLGC:PLAC",
	"SLGS",
	"SLGS:DATE",
	"SLGS:PLAC",
	"SOUR",
	"SPFX",
	"SSN",
	"STAE",
	"STAT",
	"STAT:DATE",
	"SUBM",
	"SUBN",
	"SURN",
	"TEMP",
	"TEXT",
	"TIME",
	"TITL",
	"TITL:FONE",
	"TITL:ROMN",
	"TITL:_HEB",
	"TRLR",
	"TYPE",
	"URL",
	"VERS",
	"WIFE",
	"WILL",
	"WWW",
	"_ADOP_CHIL",
	"_ADOP_GCHI",
	"_ADOP_GCH1",
	"_ADOP_GCH2",
	"_ADOP_HSIB",
	"_ADOP_SIBL",
	"_ADPF",
	"_ADPM",
	"_AKA",
	"_AKAN",
	"_ASSO",
	"_BAPM_CHIL",
	"_BAPM_GCHI",
	"_BAPM_GCH1",
	"_BAPM_GCH2",
	"_BAPM_HSIB",
	"_BAPM_SIBL",
	"_BIBL",
	"_BIRT_CHIL",
	"_BIRT_GCHI",
	"_BIRT_GCH1",
	"_BIRT_GCH2",
	"_BIRT_HSIB",
	"_BIRT_SIBL",
	"_BRTM",
	"_BRTM:DATE",
	"_BRTM:PLAC",
	"_BURI_CHIL",
	"_BURI_GCHI",
	"_BURI_GCH1",
	"_BURI_GCH2",
	"_BURI_GPAR",
	"_BURI_HSIB",
	"_BURI_SIBL",
	"_BURI_SPOU",
	"_CHR_CHIL",
	"_CHR_GCHI",
	"_CHR_GCH1",
	"_CHR_GCH2",
	"_CHR_HSIB",
	"_CHR_SIBL",
	"_COML",
	"_CREM_CHIL",
	"_CREM_GCHI",
	"_CREM_GCH1",
	"_CREM_GCH2",
	"_CREM_GPAR",
	"_CREM_HSIB",
	"_CREM_SIBL",
	"_CREM_SPOU",
	"_DATE",
	"_DBID",
	"_DEAT_CHIL",
	"_DEAT_GCHI",
	"_DEAT_GCH1",
	"_DEAT_GCH2",
	"_DEAT_GPAR",
	"_DEAT_GPA1",
	"_DEAT_GPA2",
	"_DEAT_HSIB",
	"_DEAT_PARE",
	"_DEAT_SIBL",
	"_DEAT_SPOU",
	"_DEG",
	"_DETS",
	"_DNA",
	"_EMAIL",
	"_EYEC",
	"_FA1",
	"_FA2",
	"_FA3",
	"_FA4",
	"_FA5",
	"_FA6",
	"_FA7",
	"_FA8",
	"_FA9",
	"_FA10",
	"_FA11",
	"_FA12",
	"_FA13",
	"_FNRL",
	"_FREL",
	"_GEDF",
	"_GODP",
	"_GOV",
	"_HAIR",
	"_HEB",
	"_HEIG",
	"_HNM",
	"_HOL",
	"_INTE",
	"_LOC",
	"_MARI",
	"_MARNM",
	"_PRIM",
	"_MARNM_SURN",
	"_MARR_CHIL",
	"_MARR_FAMC",
	"_MARR_GCHI",
	"_MARR_GCH1",
	"_MARR_GCH2",
	"_MARR_HSIB",
	"_MARR_PARE",
	"_MARR_SIBL",
	"_MBON",
	"_MDCL",
	"_MEDC",
	"_MEND",
	"_MILI",
	"_MILT",
	"_MREL",
	"_MSTAT",
	"_NAME",
	"_NAMS",
	"_NLIV",
	"_NMAR",
	"_NMR",
	"_PLACE",
	"_WT_USER",
	"_PRMN",
	"_SCBK",
	"_SEPR",
	"_SSHOW",
	"_STAT",
	"_SUBQ",
	"_TODO",
	"_TYPE",
	"_UID",
	"_URL",
	"_WEIG",
	"_WITN",
	"_YART",
	"__BRTM_CHIL",
	"__BRTM_GCHI",
	"__BRTM_GCH1",
	"__BRTM_GCH2",
	"__BRTM_HSIB",
	"__BRTM_SIBL",

	// Pseudo-tags generated when displaying media object attributes.
	"__FILE_SIZE__",
	"__IMAGE_SIZE__",
}
