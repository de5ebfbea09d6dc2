// Package importer loads GEDCOM files into the statistics store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joescharf/gedref/internal/gedcom"
	"github.com/joescharf/gedref/internal/models"
	"github.com/joescharf/gedref/internal/store"
)

// Result holds the outcome of importing one file.
type Result struct {
	Tree        *models.Tree   `json:"tree"`
	Created     bool           `json:"created"`
	Records     int            `json:"records"`
	ByType      map[string]int `json:"by_type"`
	MissingUIDs int            `json:"missing_uids"`
	InvalidUIDs []string       `json:"invalid_uids,omitempty"`
}

// Records converts parsed GEDCOM records to the form the store keeps.
// Records without an xref (HEAD, TRLR) are skipped.
func Records(recs []gedcom.Record) []models.TreeRecord {
	out := make([]models.TreeRecord, 0, len(recs))
	for _, r := range recs {
		if r.Xref == "" {
			continue
		}
		tr := models.TreeRecord{
			Xref:      r.Xref,
			Type:      r.Tag,
			HasSource: r.Contains("SOUR"),
			UID:       r.ValueAt("_UID"),
		}
		if r.Type() == gedcom.RecordMedia {
			mt := r.ValueAt("FILE:FORM:TYPE")
			if mt == "" {
				mt = r.ValueAt("FORM:TYPE")
			}
			tr.MediaType = strings.ToLower(strings.TrimSpace(mt))
		}
		out = append(out, tr)
	}
	return out
}

// File imports the GEDCOM file at path into the tree called name. An
// empty name uses the file's base name.
func File(ctx context.Context, s store.Store, name, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gedcom: %w", err)
	}
	defer func() { _ = f.Close() }()

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Reader(ctx, s, name, path, f)
}

// Reader imports a GEDCOM stream into the tree called name, creating the
// tree if needed and replacing its previous records.
func Reader(ctx context.Context, s store.Store, name, source string, r io.Reader) (*Result, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("tree name is required")
	}

	parsed, err := gedcom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse gedcom: %w", err)
	}
	records := Records(parsed)

	res := &Result{Records: len(records), ByType: map[string]int{}}
	for _, rec := range records {
		res.ByType[rec.Type]++
		switch {
		case rec.UID == "":
			if rec.Type == string(gedcom.RecordIndividual) || rec.Type == string(gedcom.RecordFamily) {
				res.MissingUIDs++
			}
		case !gedcom.ValidUID(rec.UID):
			res.InvalidUIDs = append(res.InvalidUIDs, rec.Xref)
		}
	}

	tree, err := s.GetTreeByName(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		tree = &models.Tree{Name: name, Title: titleOf(parsed, name), SourceFile: source}
		res.Created = true
	case err != nil:
		return nil, err
	default:
		tree.SourceFile = source
	}

	// A failed save leaves the previous import, or no tree at all.
	if err := s.SaveImport(ctx, tree, records); err != nil {
		return nil, err
	}
	res.Tree = tree
	slog.Debug("imported tree", "tree", tree.Name, "records", res.Records, "created", res.Created)
	return res, nil
}

// titleOf returns the file name recorded in the header, or fallback.
func titleOf(recs []gedcom.Record, fallback string) string {
	for _, r := range recs {
		if r.Tag != "HEAD" {
			continue
		}
		if t := strings.TrimSpace(r.ValueAt("FILE")); t != "" {
			return t
		}
	}
	return fallback
}
