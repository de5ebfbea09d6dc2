package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/joescharf/gedref/internal/models"
)

// Translator supplies translated strings and number formatting.
type Translator interface {
	Translate(key string) string
	Percentage(fraction float64, precision int) string
	LanguageTag() string
}

// MediaLabeler translates OBJE:FILE:FORM:TYPE values.
type MediaLabeler interface {
	FileFormTypeValue(value string) string
}

// Theme holds the chart parameters a site theme can override.
type Theme struct {
	NoValuesColor   string `json:"no_values_color"`
	HighValuesColor string `json:"high_values_color"`
	SmallChartX     int    `json:"small_chart_x"`
	SmallChartY     int    `json:"small_chart_y"`
}

// DefaultTheme returns the stock chart parameters.
func DefaultTheme() Theme {
	return Theme{
		NoValuesColor:   "ffffff",
		HighValuesColor: "84beff",
		SmallChartX:     440,
		SmallChartY:     125,
	}
}

// Options override theme values for one chart. Empty fields use the theme.
type Options struct {
	Size      string
	ColorFrom string
	ColorTo   string
}

// MediaCount is the number of media objects of one type.
type MediaCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

var (
	imageTmpl = template.Must(template.New("image").Parse(
		`<div class="chart chart-google"><img src="{{.URL}}" width="{{.Width}}" height="{{.Height}}" alt="{{.Title}}" title="{{.Title}}"></div>`))

	// The inline script draws the div that precedes it.
	pieTmpl = template.Must(template.New("pie").Parse(
		`<script src="` + visualizationLoader + `"></script>` +
			`<div class="chart chart-pie" data-language="{{.Language}}" data-colors="{{.Colors}}" data-chart="{{.Data}}"{{if .Title}} title="{{.Title}}"{{end}}></div>` +
			`<script>
(function (el) {
  google.charts.load("current", {packages: ["corechart"], language: el.dataset.language});
  google.charts.setOnLoadCallback(function () {
    var data = google.visualization.arrayToDataTable(JSON.parse(el.dataset.chart));
    new google.visualization.PieChart(el).draw(data, {
      title: el.title,
      colors: JSON.parse(el.dataset.colors),
      pieSliceText: "label",
      legend: "none"
    });
  });
})(document.currentScript.previousElementSibling);
</script>`))
)

// visualizationLoader is the Google Charts loader used by pie charts.
const visualizationLoader = "https://www.gstatic.com/charts/loader.js"

// MediaCountsFrom adapts stored media type counts.
func MediaCountsFrom(counts []models.MediaTypeCount) []MediaCount {
	out := make([]MediaCount, len(counts))
	for i, c := range counts {
		out[i] = MediaCount{Type: c.Type, Count: c.Count}
	}
	return out
}

// Renderer turns aggregate counts into chart markup.
type Renderer struct {
	tr    Translator
	theme Theme
}

// NewRenderer creates a renderer using tr and theme.
func NewRenderer(tr Translator, theme Theme) *Renderer {
	return &Renderer{tr: tr, theme: theme}
}

// IndividualsWithSources renders a pie chart of individuals with and
// without source citations. It returns "" when total is 0.
func (r *Renderer) IndividualsWithSources(total, withSources int, opts Options) (template.HTML, error) {
	return r.sourcesPie(r.tr.Translate("Individuals with sources"), total, withSources, opts)
}

// FamiliesWithSources renders a pie chart of families with and without
// source citations. It returns "" when total is 0.
func (r *Renderer) FamiliesWithSources(total, withSources int, opts Options) (template.HTML, error) {
	return r.sourcesPie(r.tr.Translate("Families with sources"), total, withSources, opts)
}

// SourcesChart is the data behind a with/without sources pie chart.
type SourcesChart struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SourcesChartData computes the chart URL and size. ok is false when
// total is 0, whatever the size option holds.
func (r *Renderer) SourcesChartData(title string, total, withSources int, opts Options) (SourcesChart, bool, error) {
	if total < 0 || withSources < 0 || withSources > total {
		return SourcesChart{}, false, fmt.Errorf("invalid counts: %d of %d", withSources, total)
	}
	if total == 0 {
		return SourcesChart{}, false, nil
	}
	size := opts.Size
	if size == "" {
		size = fmt.Sprintf("%dx%d", r.theme.SmallChartX, r.theme.SmallChartY)
	}
	width, height, err := ParseSize(size)
	if err != nil {
		return SourcesChart{}, false, err
	}

	colorFrom := firstNonEmpty(opts.ColorFrom, r.theme.NoValuesColor)
	colorTo := firstNonEmpty(opts.ColorTo, r.theme.HighValuesColor)

	ratio := float64(withSources) / float64(total)
	with := int(100 * ratio)
	data := ExtendedEncoding([]int{100 - with, with})
	labels := r.tr.Translate("Without sources") + " - " + r.tr.Percentage(1-ratio, 1) +
		"|" + r.tr.Translate("With sources") + " - " + r.tr.Percentage(ratio, 1)

	return SourcesChart{
		Title:  title,
		URL:    PieChartURL(data, size, []string{colorFrom, colorTo}, labels),
		Width:  width,
		Height: height,
	}, true, nil
}

func (r *Renderer) sourcesPie(title string, total, withSources int, opts Options) (template.HTML, error) {
	c, ok, err := r.SourcesChartData(title, total, withSources, opts)
	if err != nil || !ok {
		return "", err
	}
	var buf bytes.Buffer
	if err := imageTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// PieChart is a Google Visualization data table with its colours.
type PieChart struct {
	Title    string   `json:"title,omitempty"`
	Data     [][]any  `json:"data"`
	Colors   []string `json:"colors"`
	Language string   `json:"language"`
}

// MediaChartData builds the data table for a media type chart: a header
// row followed by one row per type, in the order given.
func (r *Renderer) MediaChartData(media []MediaCount, labels MediaLabeler, colorFrom, colorTo string) (PieChart, error) {
	data := [][]any{{r.tr.Translate("Type"), r.tr.Translate("Total")}}
	for _, m := range media {
		label := labels.FileFormTypeValue(m.Type)
		if label == "" {
			label = r.tr.Translate("None")
		}
		data = append(data, []any{label, m.Count})
	}

	colors, err := InterpolateRGB(
		firstNonEmpty(colorFrom, r.theme.NoValuesColor),
		firstNonEmpty(colorTo, r.theme.HighValuesColor),
		len(data)-1,
	)
	if err != nil {
		return PieChart{}, err
	}

	return PieChart{Data: data, Colors: colors, Language: r.tr.LanguageTag()}, nil
}

// MediaTypes renders a pie chart of the most used media types. It returns
// "" when there is no media.
func (r *Renderer) MediaTypes(media []MediaCount, labels MediaLabeler, colorFrom, colorTo string) (template.HTML, error) {
	if len(media) == 0 {
		return "", nil
	}
	pc, err := r.MediaChartData(media, labels, colorFrom, colorTo)
	if err != nil {
		return "", err
	}
	return renderPie(pc)
}

func renderPie(pc PieChart) (template.HTML, error) {
	data, err := json.Marshal(pc.Data)
	if err != nil {
		return "", fmt.Errorf("encode chart data: %w", err)
	}
	colors, err := json.Marshal(pc.Colors)
	if err != nil {
		return "", fmt.Errorf("encode chart colours: %w", err)
	}

	var buf bytes.Buffer
	err = pieTmpl.Execute(&buf, map[string]string{
		"Title":    pc.Title,
		"Language": pc.Language,
		"Colors":   string(colors),
		"Data":     string(data),
	})
	if err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// ParseSize parses a "WxH" chart size.
func ParseSize(size string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(size)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid chart size %q: want WIDTHxHEIGHT", size)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid chart width in %q", size)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid chart height in %q", size)
	}
	return width, height, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
