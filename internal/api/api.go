package api

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/joescharf/gedref/internal/chart"
	"github.com/joescharf/gedref/internal/gedcom"
	"github.com/joescharf/gedref/internal/i18n"
	"github.com/joescharf/gedref/internal/locale"
	"github.com/joescharf/gedref/internal/models"
	"github.com/joescharf/gedref/internal/store"
)

// Server provides the REST API handlers.
type Server struct {
	store  store.Store
	bundle *i18n.Bundle
	theme  chart.Theme

	translators sync.Map // language.Tag -> *i18n.Translator
}

// NewServer creates a new API server.
func NewServer(s store.Store, bundle *i18n.Bundle, theme chart.Theme) *Server {
	return &Server{store: s, bundle: bundle, theme: theme}
}

// Router returns an http.Handler for the API routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/tags", s.listTags)
	mux.HandleFunc("GET /api/v1/tags/{tag}", s.getTag)
	mux.HandleFunc("GET /api/v1/picklist/{type}", s.picklist)
	mux.HandleFunc("GET /api/v1/media-types", s.mediaTypes)
	mux.HandleFunc("POST /api/v1/uid", s.newUID)
	mux.HandleFunc("GET /api/v1/uid/{uid}", s.checkUID)

	mux.HandleFunc("GET /api/v1/languages", s.listLanguages)
	mux.HandleFunc("GET /api/v1/locales", s.listLocales)
	mux.HandleFunc("GET /api/v1/locales/{code}", s.getLocale)
	mux.HandleFunc("GET /api/v1/territories/{code}", s.getTerritory)

	mux.HandleFunc("GET /api/v1/trees", s.listTrees)
	mux.HandleFunc("GET /api/v1/trees/{id}", s.getTree)
	mux.HandleFunc("DELETE /api/v1/trees/{id}", s.deleteTree)
	mux.HandleFunc("GET /api/v1/trees/{id}/stats", s.treeStats)
	mux.HandleFunc("GET /api/v1/trees/{id}/charts/individuals", s.individualsChart)
	mux.HandleFunc("GET /api/v1/trees/{id}/charts/families", s.familiesChart)
	mux.HandleFunc("GET /api/v1/trees/{id}/charts/media", s.mediaChart)

	return logMiddleware(corsMiddleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Language")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeHTML(w http.ResponseWriter, html template.HTML) {
	if html == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// translator returns the translator for the request's language, caching
// one per language.
func (s *Server) translator(w http.ResponseWriter, r *http.Request) *i18n.Translator {
	tag, persist := s.bundle.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	if tr, ok := s.translators.Load(tag); ok {
		return tr.(*i18n.Translator)
	}
	tr, _ := s.translators.LoadOrStore(tag, s.bundle.Translator(tag))
	return tr.(*i18n.Translator)
}

// --- Tags ---

type tagOut struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Known bool   `json:"known"`
	HTML  string `json:"html,omitempty"`
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	reg := gedcom.NewRegistry(s.translator(w, r))
	prefix := r.URL.Query().Get("prefix")

	out := []tagOut{}
	for _, t := range gedcom.AllTags() {
		if prefix != "" && !strings.HasPrefix(t, prefix) {
			continue
		}
		out = append(out, tagOut{Tag: t, Label: reg.Label(t), Known: true})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	reg := gedcom.NewRegistry(s.translator(w, r))
	tag := r.PathValue("tag")

	out := tagOut{Tag: tag, Label: reg.Label(tag), Known: reg.IsTag(tag)}
	if v := r.URL.Query().Get("value"); v != "" {
		out.HTML = string(reg.LabelValue(tag, v, r.URL.Query().Get("element")))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) picklist(w http.ResponseWriter, r *http.Request) {
	reg := gedcom.NewRegistry(s.translator(w, r))
	writeJSON(w, http.StatusOK, reg.PicklistFacts(gedcom.RecordType(r.PathValue("type"))))
}

func (s *Server) mediaTypes(w http.ResponseWriter, r *http.Request) {
	reg := gedcom.NewRegistry(s.translator(w, r))
	writeJSON(w, http.StatusOK, reg.FileFormTypes())
}

func (s *Server) newUID(w http.ResponseWriter, r *http.Request) {
	n := 1
	if v := r.URL.Query().Get("count"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c < 1 || c > 100 {
			writeError(w, http.StatusBadRequest, "count must be between 1 and 100")
			return
		}
		n = c
	}
	uids := make([]string, n)
	for i := range uids {
		uids[i] = gedcom.NewUID()
	}
	writeJSON(w, http.StatusCreated, map[string][]string{"uids": uids})
}

func (s *Server) checkUID(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	writeJSON(w, http.StatusOK, map[string]any{"uid": uid, "valid": gedcom.ValidUID(uid)})
}

// --- Locales ---

type territoryOut struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type localeOut struct {
	Code      string       `json:"code"`
	Language  string       `json:"language"`
	Endonym   string       `json:"endonym"`
	Direction string       `json:"direction"`
	Territory territoryOut `json:"territory"`
}

func toLocaleOut(l locale.Locale, lang language.Tag) localeOut {
	return localeOut{
		Code:      l.Code(),
		Language:  l.Language(),
		Endonym:   l.Endonym(),
		Direction: string(l.Direction()),
		Territory: territoryOut{Code: l.Territory().Code(), Name: l.Territory().Name(lang)},
	}
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	tr := s.translator(w, r)
	type languageOut struct {
		Tag      string `json:"tag"`
		Active   bool   `json:"active"`
		Messages int    `json:"messages"`
	}
	var out []languageOut
	for _, t := range s.bundle.Languages() {
		out = append(out, languageOut{Tag: t.String(), Active: t == tr.Tag(), Messages: s.bundle.MessageCount(t)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listLocales(w http.ResponseWriter, r *http.Request) {
	lang := s.translator(w, r).Tag()
	known := locale.Known()
	out := make([]localeOut, 0, len(known))
	for _, l := range known {
		out = append(out, toLocaleOut(l, lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getLocale(w http.ResponseWriter, r *http.Request) {
	l, err := locale.Parse(r.PathValue("code"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toLocaleOut(l, s.translator(w, r).Tag()))
}

func (s *Server) getTerritory(w http.ResponseWriter, r *http.Request) {
	t, err := locale.TerritoryByCode(r.PathValue("code"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, territoryOut{Code: t.Code(), Name: t.Name(s.translator(w, r).Tag())})
}

// --- Trees ---

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	slog.Warn("store error", "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) listTrees(w http.ResponseWriter, r *http.Request) {
	trees, err := s.store.ListTrees(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if trees == nil {
		trees = []*models.Tree{}
	}
	writeJSON(w, http.StatusOK, trees)
}

func (s *Server) getTree(w http.ResponseWriter, r *http.Request) {
	t, err := s.store.GetTree(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTree(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTree(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) treeStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// --- Charts ---

func chartOptions(r *http.Request) chart.Options {
	q := r.URL.Query()
	return chart.Options{Size: q.Get("size"), ColorFrom: q.Get("color_from"), ColorTo: q.Get("color_to")}
}

func (s *Server) individualsChart(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	html, err := chart.NewRenderer(s.translator(w, r), s.theme).
		IndividualsWithSources(st.Individuals, st.IndividualsWithSources, chartOptions(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeHTML(w, html)
}

func (s *Server) familiesChart(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	html, err := chart.NewRenderer(s.translator(w, r), s.theme).
		FamiliesWithSources(st.Families, st.FamiliesWithSources, chartOptions(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeHTML(w, html)
}

func (s *Server) mediaChart(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	if _, err := s.store.GetTree(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	counts, err := s.store.MediaTypeCounts(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	tr := s.translator(w, r)
	opts := chartOptions(r)
	html, err := chart.NewRenderer(tr, s.theme).
		MediaTypes(chart.MediaCountsFrom(counts), gedcom.NewRegistry(tr), opts.ColorFrom, opts.ColorTo)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeHTML(w, html)
}
