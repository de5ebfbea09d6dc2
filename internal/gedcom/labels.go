package gedcom

// englishLabels holds the source-language label for each known tag. The
// strings double as translation catalog keys.
var englishLabels = map[string]string{
	"ABBR":           "Abbreviation",
	"ADDR":           "Address",
	"ADR1":           "Address line 1",
	"ADR2":           "Address line 2",
	"ADOP":           "Adoption",
	"ADOP:DATE":      "Date of adoption",
	"ADOP:PLAC":      "Place of adoption",
	"AFN":            "Ancestral file number",
	"AGE":            "Age",
	"AGNC":           "Agency",
	"ALIA":           "Alias",
	"ANCE":           "Generations of ancestors",
	"ANCI":           "Ancestors interest",
	"ANUL":           "Annulment",
	"ASSO":           "Associate",
	"AUTH":           "Author",
	"BAPL":           "LDS baptism",
	"BAPL:DATE":      "Date of LDS baptism",
	"BAPL:PLAC":      "Place of LDS baptism",
	"BAPM":           "Baptism",
	"BAPM:DATE":      "Date of baptism",
	"BAPM:PLAC":      "Place of baptism",
	"BARM":           "Bar mitzvah",
	"BARM:DATE":      "Date of bar mitzvah",
	"BARM:PLAC":      "Place of bar mitzvah",
	"BASM":           "Bat mitzvah",
	"BASM:DATE":      "Date of bat mitzvah",
	"BASM:PLAC":      "Place of bat mitzvah",
	"BIRT":           "Birth",
	"BIRT:DATE":      "Date of birth",
	"BIRT:PLAC":      "Place of birth",
	"BLES":           "Blessing",
	"BLES:DATE":      "Date of blessing",
	"BLES:PLAC":      "Place of blessing",
	"BLOB":           "Binary data object",
	"BURI":           "Burial",
	"BURI:DATE":      "Date of burial",
	"BURI:PLAC":      "Place of burial",
	"CALN":           "Call number",
	"CAST":           "Caste",
	"CAUS":           "Cause",
	"CEME":           "Cemetery",
	"CENS":           "Census",
	"CENS:DATE":      "Date of census",
	"CENS:PLAC":      "Place of census",
	"CHAN":           "Last change",
	"CHAN:DATE":      "Date of last change",
	"CHAN:_WT_USER":  "Author of last change",
	"CHAR":           "Character set",
	"CHIL":           "Child",
	"CHR":            "Christening",
	"CHR:DATE":       "Date of christening",
	"CHR:PLAC":       "Place of christening",
	"CHRA":           "Adult christening",
	"CITN":           "Citizenship",
	"CITY":           "City",
	"COMM":           "Comment",
	"CONC":           "Concatenation",
	"CONT":           "Continued",
	"CONF":           "Confirmation",
	"CONF:DATE":      "Date of confirmation",
	"CONF:PLAC":      "Place of confirmation",
	"CONL":           "LDS confirmation",
	"COPR":           "Copyright",
	"CORP":           "Corporation",
	"CREM":           "Cremation",
	"CREM:DATE":      "Date of cremation",
	"CREM:PLAC":      "Place of cremation",
	"CTRY":           "Country",
	"DATA":           "Data",
	"DATA:DATE":      "Date range",
	"DATE":           "Date",
	"DEAT":           "Death",
	"DEAT:CAUS":      "Cause of death",
	"DEAT:DATE":      "Date of death",
	"DEAT:PLAC":      "Place of death",
	"DESC":           "Descendants",
	"DESI":           "Descendants interest",
	"DEST":           "Destination",
	"DIV":            "Divorce",
	"DIVF":           "Divorce filed",
	"DSCR":           "Description",
	"EDUC":           "Education",
	"EDUC:AGNC":      "School or college",
	"EMAI":           "Email address",
	"EMAIL":          "Email address",
	"EMAL":           "Email address",
	"EMIG":           "Emigration",
	"EMIG:DATE":      "Date of emigration",
	"EMIG:PLAC":      "Place of emigration",
	"ENDL":           "LDS endowment",
	"ENDL:DATE":      "Date of LDS endowment",
	"ENDL:PLAC":      "Place of LDS endowment",
	"ENGA":           "Engagement",
	"ENGA:DATE":      "Date of engagement",
	"ENGA:PLAC":      "Place of engagement",
	"EVEN":           "Event",
	"EVEN:DATE":      "Date of event",
	"EVEN:PLAC":      "Place of event",
	"EVEN:TYPE":      "Type of event",
	"FACT":           "Fact",
	"FACT:TYPE":      "Type of fact",
	"FAM":            "Family",
	"FAMC":           "Family as a child",
	"FAMF":           "Family file",
	"FAMS":           "Family as a spouse",
	"FAX":            "Fax",
	"FCOM":           "First communion",
	"FCOM:DATE":      "Date of first communion",
	"FCOM:PLAC":      "Place of first communion",
	"FILE":           "Filename",
	"FONE":           "Phonetic",
	"FORM":           "Format",
	"GEDC":           "GEDCOM file",
	"GIVN":           "Given names",
	"GRAD":           "Graduation",
	"HEAD":           "Header",
	"HUSB":           "Husband",
	"IDNO":           "Identification number",
	"IMMI":           "Immigration",
	"IMMI:DATE":      "Date of immigration",
	"IMMI:PLAC":      "Place of immigration",
	"INDI":           "Individual",
	"INFL":           "Infant",
	"LANG":           "Language",
	"LATI":           "Latitude",
	"LEGA":           "Legatee",
	"LONG":           "Longitude",
	"MAP":            "Coordinates",
	"MARB":           "Marriage banns",
	"MARB:DATE":      "Date of marriage banns",
	"MARB:PLAC":      "Place of marriage banns",
	"MARR_CIVIL":     "Civil marriage",
	"MARR_PARTNERS":  "Registered partnership",
	"MARR_RELIGIOUS": "Religious marriage",
	"MARR_UNKNOWN":   "Marriage type unknown",
	"MARC":           "Marriage contract",
	"MARL":           "Marriage license",
	"MARR":           "Marriage",
	"MARR:DATE":      "Date of marriage",
	"MARR:PLAC":      "Place of marriage",
	"MARS":           "Marriage settlement",
	"MEDI":           "Media type",
	"NAME":           "Name",
	"NAME:FONE":      "Phonetic name",
	"NAME:_HEB":      "Name in Hebrew",
	"NATI":           "Nationality",
	"NATU":           "Naturalization",
	"NATU:DATE":      "Date of naturalization",
	"NATU:PLAC":      "Place of naturalization",
	"NCHI":           "Number of children",
	"NICK":           "Nickname",
	"NMR":            "Number of marriages",
	"NOTE":           "Note",
	"NPFX":           "Name prefix",
	"NSFX":           "Name suffix",
	"OBJE":           "Media object",
	"OCCU":           "Occupation",
	"OCCU:AGNC":      "Employer",
	"ORDI":           "Ordinance",
	"ORDN":           "Ordination",
	"ORDN:AGNC":      "Religious institution",
	"ORDN:DATE":      "Date of ordination",
	"ORDN:PLAC":      "Place of ordination",
	"PAGE":           "Citation details",
	"PEDI":           "Relationship to parents",
	"PHON":           "Phone",
	"PLAC":           "Place",
	"PLAC:FONE":      "Phonetic place",
	"PLAC:ROMN":      "Romanized place",
	"PLAC:_HEB":      "Place in Hebrew",
	"POST":           "Postal code",
	"PROB":           "Probate",
	"PROP":           "Property",
	"PUBL":           "Publication",
	"QUAY":           "Quality of data",
	"REFN":           "Reference number",
	"RELA":           "Relationship",
	"RELI":           "Religion",
	"REPO":           "Repository",
	"RESI":           "Residence",
	"RESI:DATE":      "Date of residence",
	"RESI:PLAC":      "Place of residence",
	"RESN":           "Restriction",
	"RETI":           "Retirement",
	"RETI:AGNC":      "Employer",
	"RFN":            "Record file number",
	"RIN":            "Record ID number",
	"ROLE":           "Role",
	"ROMN":           "Romanized",
	"SERV":           "Remote server",
	"SEX":            "Gender",
	"SHARED_NOTE":    "Shared note",
	"SLGC":           "LDS child sealing",
	"SLGC:DATE":      "Date of LDS child sealing",
	"SLGC:PLAC":      "Place of LDS child sealing",
	"SLGS":           "LDS spouse sealing",
	"SLGS:DATE":      "Date of LDS spouse sealing",
	"SLGS:PLAC":      "Place of LDS spouse sealing",
	"SOUR":           "Source",
	"SPFX":           "Surname prefix",
	"SSN":            "Social security number",
	"STAE":           "State",
	"STAT":           "Status",
	"STAT:DATE":      "Status change date",
	"SUBM":           "Submitter",
	"SUBN":           "Submission",
	"SURN":           "Surname",
	"TEMP":           "Temple",
	"TEXT":           "Text",
	"TIME":           "Time",
	"TITL":           "Title",
	"TITL:FONE":      "Phonetic title",
	"TITL:ROMN":      "Romanized title",
	"TITL:_HEB":      "Title in Hebrew",
	"TRLR":           "Trailer",
	"TYPE":           "Type",
	"URL":            "URL",
	"VERS":           "Version",
	"WIFE":           "Wife",
	"WILL":           "Will",
	"WWW":            "URL",
	"_ADOP_CHIL":     "Adoption of a child",
	"_ADOP_GCHI":     "Adoption of a grandchild",
	"_ADOP_GCH1":     "Adoption of a grandchild (daughter’s child)",
	"_ADOP_GCH2":     "Adoption of a grandchild (son’s child)",
	"_ADOP_HSIB":     "Adoption of a half-sibling",
	"_ADOP_SIBL":     "Adoption of a sibling",
	"_ADPF":          "Adopted by father",
	"_ADPM":          "Adopted by mother",
	"_AKA":           "Also known as",
	"_AKAN":          "Also known as",
	"_ASSO":          "Associate",
	"_BAPM_CHIL":     "Baptism of a child",
	"_BAPM_GCHI":     "Baptism of a grandchild",
	"_BAPM_GCH1":     "Baptism of a grandchild (daughter’s child)",
	"_BAPM_GCH2":     "Baptism of a grandchild (son’s child)",
	"_BAPM_HSIB":     "Baptism of a half-sibling",
	"_BAPM_SIBL":     "Baptism of a sibling",
	"_BIBL":          "Bibliography",
	"_BIRT_CHIL":     "Birth of a child",
	"_BIRT_GCHI":     "Birth of a grandchild",
	"_BIRT_GCH1":     "Birth of a grandchild (daughter’s child)",
	"_BIRT_GCH2":     "Birth of a grandchild (son’s child)",
	"_BIRT_HSIB":     "Birth of a half-sibling",
	"_BIRT_SIBL":     "Birth of a sibling",
	"_BRTM":          "Brit milah",
	"_BRTM:DATE":     "Date of brit milah",
	"_BRTM:PLAC":     "Place of brit milah",
	"_BURI_CHIL":     "Burial of a child",
	"_BURI_GCHI":     "Burial of a grandchild",
	"_BURI_GCH1":     "Burial of a grandchild (daughter’s child)",
	"_BURI_GCH2":     "Burial of a grandchild (son’s child)",
	"_BURI_GPAR":     "Burial of a grandparent",
	"_BURI_HSIB":     "Burial of a half-sibling",
	"_BURI_SIBL":     "Burial of a sibling",
	"_BURI_SPOU":     "Burial of a spouse",
	"_CHR_CHIL":      "Christening of a child",
	"_CHR_GCHI":      "Christening of a grandchild",
	"_CHR_GCH1":      "Christening of a grandchild (daughter’s child)",
	"_CHR_GCH2":      "Christening of a grandchild (son’s child)",
	"_CHR_HSIB":      "Christening of a half-sibling",
	"_CHR_SIBL":      "Christening of a sibling",
	"_COML":          "Common law marriage",
	"_CREM_CHIL":     "Cremation of a child",
	"_CREM_GCHI":     "Cremation of a grandchild",
	"_CREM_GCH1":     "Cremation of a grandchild (daughter’s child)",
	"_CREM_GCH2":     "Cremation of a grandchild (son’s child)",
	"_CREM_GPAR":     "Cremation of a grandparent",
	"_CREM_HSIB":     "Cremation of a half-sibling",
	"_CREM_SIBL":     "Cremation of a sibling",
	"_CREM_SPOU":     "Cremation of a spouse",
	"_DATE":          "Date",
	"_DBID":          "Linked database ID",
	"_DEAT_CHIL":     "Death of a child",
	"_DEAT_GCHI":     "Death of a grandchild",
	"_DEAT_GCH1":     "Death of a grandchild (daughter’s child)",
	"_DEAT_GCH2":     "Death of a grandchild (son’s child)",
	"_DEAT_GPAR":     "Death of a grandparent",
	"_DEAT_GPA1":     "Death of a paternal grandparent",
	"_DEAT_GPA2":     "Death of a maternal grandparent",
	"_DEAT_HSIB":     "Death of a half-sibling",
	"_DEAT_PARE":     "Death of a parent",
	"_DEAT_SIBL":     "Death of a sibling",
	"_DEAT_SPOU":     "Death of a spouse",
	"_DEG":           "Degree",
	"_DETS":          "Death of one spouse",
	"_DNA":           "DNA markers",
	"_EMAIL":         "Email address",
	"_EYEC":          "Eye color",
	"_FA1":           "Fact 1",
	"_FA2":           "Fact 2",
	"_FA3":           "Fact 3",
	"_FA4":           "Fact 4",
	"_FA5":           "Fact 5",
	"_FA6":           "Fact 6",
	"_FA7":           "Fact 7",
	"_FA8":           "Fact 8",
	"_FA9":           "Fact 9",
	"_FA10":          "Fact 10",
	"_FA11":          "Fact 11",
	"_FA12":          "Fact 12",
	"_FA13":          "Fact 13",
	"_FNRL":          "Funeral",
	"_FREL":          "Relationship to father",
	"_GEDF":          "GEDCOM file",
	"_GODP":          "Godparent",
	"_GOV":           "GOV identifier",
	"_HAIR":          "Hair color",
	"_HEB":           "Hebrew",
	"_HEIG":          "Height",
	"_HNM":           "Hebrew name",
	"_HOL":           "Holocaust",
	"_INTE":          "Interred",
	"_LOC":           "Location",
	"_MARI":          "Marriage intention",
	"_MARNM":         "Married name",
	"_PRIM":          "Highlighted image",
	"_MARNM_SURN":    "Married surname",
	"_MARR_CHIL":     "Marriage of a child",
	"_MARR_FAMC":     "Marriage of parents",
	"_MARR_GCHI":     "Marriage of a grandchild",
	"_MARR_GCH1":     "Marriage of a grandchild (daughter’s child)",
	"_MARR_GCH2":     "Marriage of a grandchild (son’s child)",
	"_MARR_HSIB":     "Marriage of a half-sibling",
	"_MARR_PARE":     "Marriage of a parent",
	"_MARR_SIBL":     "Marriage of a sibling",
	"_MBON":          "Marriage bond",
	"_MDCL":          "Medical",
	"_MEDC":          "Medical condition",
	"_MEND":          "Marriage ending status",
	"_MILI":          "Military",
	"_MILT":          "Military service",
	"_MREL":          "Relationship to mother",
	"_MSTAT":         "Marriage beginning status",
	"_NAME":          "Mailing name",
	"_NAMS":          "Namesake",
	"_NLIV":          "Not living",
	"_NMAR":          "Never married",
	"_NMR":           "Not married",
	"_PLACE":         "Place",
	"_WT_USER":       "by",
	"_PRMN":          "Permanent number",
	"_SCBK":          "Scrapbook",
	"_SEPR":          "Separated",
	"_SSHOW":         "Slide show",
	"_STAT":          "Marriage status",
	"_SUBQ":          "Short version",
	"_TODO":          "Research task",
	"_TYPE":          "Media type",
	"_UID":           "Unique identifier",
	"_URL":           "URL",
	"_WEIG":          "Weight",
	"_WITN":          "Witness",
	"_YART":          "Yahrzeit",
	"__BRTM_CHIL":    "Brit milah of a child",
	"__BRTM_GCHI":    "Brit milah of a grandchild",
	"__BRTM_GCH1":    "Brit milah of a grandchild (daughter’s child)",
	"__BRTM_GCH2":    "Brit milah of a grandchild (son’s child)",
	"__BRTM_HSIB":    "Brit milah of a half-sibling",
	"__BRTM_SIBL":    "Brit milah of a sibling",
	"__FILE_SIZE__":  "File size",
	"__IMAGE_SIZE__": "Image dimensions",
}
