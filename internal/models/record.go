package models

// TreeRecord is the part of a level-0 GEDCOM record the statistics need.
type TreeRecord struct {
	Xref      string `json:"xref"`
	Type      string `json:"type"`
	HasSource bool   `json:"has_source"`
	MediaType string `json:"media_type,omitempty"`
	UID       string `json:"uid,omitempty"`
}

// MediaTypeCount is the number of media objects of one type.
type MediaTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TreeStats aggregates the counts shown on the statistics page.
type TreeStats struct {
	TreeID                 string           `json:"tree_id"`
	Individuals            int              `json:"individuals"`
	IndividualsWithSources int              `json:"individuals_with_sources"`
	Families               int              `json:"families"`
	FamiliesWithSources    int              `json:"families_with_sources"`
	Sources                int              `json:"sources"`
	Repositories           int              `json:"repositories"`
	Notes                  int              `json:"notes"`
	Media                  int              `json:"media"`
	MediaTypes             []MediaTypeCount `json:"media_types"`
}
