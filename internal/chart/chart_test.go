package chart

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/joescharf/gedref/internal/gedcom"
	"github.com/joescharf/gedref/internal/i18n"
	"github.com/joescharf/gedref/internal/models"
)

func newTestRenderer(t *testing.T, tag language.Tag) (*Renderer, *i18n.Translator) {
	t.Helper()
	tr := i18n.MustLoadEmbedded().Translator(tag)
	return NewRenderer(tr, DefaultTheme()), tr
}

func TestExtendedEncoding(t *testing.T) {
	assert.Equal(t, "AAA.BA..", ExtendedEncoding([]int{0, 63, 64, 4095}))
	assert.Equal(t, "AyAy", ExtendedEncoding([]int{50, 50}))
	assert.Equal(t, "AA..", ExtendedEncoding([]int{-5, 5000}), "values are clamped")
	assert.Equal(t, "", ExtendedEncoding(nil))
	assert.Equal(t, 4095, MaxExtendedValue)
}

func TestPieChartURL(t *testing.T) {
	raw := PieChartURL("AyAy", "440x125", []string{"#ffffff", "84beff"}, "A|B")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "chart.googleapis.com", u.Host)

	q := u.Query()
	assert.Equal(t, "p3", q.Get("cht"))
	assert.Equal(t, "e:AyAy", q.Get("chd"))
	assert.Equal(t, "440x125", q.Get("chs"))
	assert.Equal(t, "ffffff,84beff", q.Get("chco"))
	assert.Equal(t, "bg,s,ffffff00", q.Get("chf"))
	assert.Equal(t, "A|B", q.Get("chl"))
}

func TestInterpolateRGB(t *testing.T) {
	colors, err := InterpolateRGB("ffffff", "000000", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"#000000"}, colors)

	colors, err = InterpolateRGB("#ffffff", "#000000", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"#808080", "#000000"}, colors)

	colors, err = InterpolateRGB("ffffff", "84beff", 0)
	require.NoError(t, err)
	assert.Empty(t, colors)

	_, err = InterpolateRGB("not-a-colour", "000000", 2)
	assert.Error(t, err)
	_, err = InterpolateRGB("ffffff", "12", 2)
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("440x125")
	require.NoError(t, err)
	assert.Equal(t, 440, w)
	assert.Equal(t, 125, h)

	w, h, err = ParseSize(" 300X200 ")
	require.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)

	for _, bad := range []string{"", "440", "x125", "440x", "0x10", "10x-1", "axb"} {
		_, _, err := ParseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestSourcesChartData(t *testing.T) {
	r, _ := newTestRenderer(t, language.English)

	c, ok, err := r.SourcesChartData("Individuals with sources", 8, 4, Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 440, c.Width)
	assert.Equal(t, 125, c.Height)

	u, err := url.Parse(c.URL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "e:AyAy", q.Get("chd"))
	assert.Equal(t, "440x125", q.Get("chs"))
	assert.Equal(t, "ffffff,84beff", q.Get("chco"))
	assert.Equal(t, "Without sources - 50.0%|With sources - 50.0%", q.Get("chl"))
}

func TestSourcesChartData_Rounding(t *testing.T) {
	r, _ := newTestRenderer(t, language.English)

	// 1 of 3 is 33.3%, truncated to 33 for the slice size.
	c, ok, err := r.SourcesChartData("t", 3, 1, Options{Size: "200x100", ColorFrom: "000000", ColorTo: "ff0000"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 200, c.Width)

	u, err := url.Parse(c.URL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "e:"+ExtendedEncoding([]int{67, 33}), q.Get("chd"))
	assert.Equal(t, "000000,ff0000", q.Get("chco"))
	assert.Equal(t, "Without sources - 66.7%|With sources - 33.3%", q.Get("chl"))
}

func TestSourcesChartData_EmptyAndInvalid(t *testing.T) {
	r, _ := newTestRenderer(t, language.English)

	_, ok, err := r.SourcesChartData("t", 0, 0, Options{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = r.SourcesChartData("t", 0, 0, Options{Size: "huge"})
	require.NoError(t, err, "an empty chart is not rendered, so its size is not checked")
	assert.False(t, ok)

	_, _, err = r.SourcesChartData("t", 2, 3, Options{})
	assert.Error(t, err)
	_, _, err = r.SourcesChartData("t", -1, 0, Options{})
	assert.Error(t, err)
	_, _, err = r.SourcesChartData("t", 2, 1, Options{Size: "huge"})
	assert.Error(t, err)
}

func TestIndividualsWithSources(t *testing.T) {
	r, _ := newTestRenderer(t, language.English)

	html, err := r.IndividualsWithSources(8, 4, Options{})
	require.NoError(t, err)
	s := string(html)
	assert.True(t, strings.HasPrefix(s, `<div class="chart chart-google"><img src="https://chart.googleapis.com/chart?`))
	assert.Contains(t, s, `width="440" height="125"`)
	assert.Contains(t, s, `alt="Individuals with sources"`)

	html, err = r.IndividualsWithSources(0, 0, Options{})
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestFamiliesWithSources_Translated(t *testing.T) {
	r, _ := newTestRenderer(t, language.French)

	html, err := r.FamiliesWithSources(10, 10, Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "Families with sources")
	assert.Contains(t, string(html), "chart-google")
}

func TestMediaChartData(t *testing.T) {
	r, tr := newTestRenderer(t, language.English)
	reg := gedcom.NewRegistry(tr)

	pc, err := r.MediaChartData([]MediaCount{{Type: "photo", Count: 3}, {Type: "", Count: 1}}, reg, "ffffff", "000000")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"Type", "Total"}, {"Photo", 3}, {"None", 1}}, pc.Data)
	assert.Equal(t, []string{"#808080", "#000000"}, pc.Colors)
	assert.Equal(t, "en", pc.Language)
}

func TestMediaChartData_ThemeColours(t *testing.T) {
	r, tr := newTestRenderer(t, language.English)

	pc, err := r.MediaChartData([]MediaCount{{Type: "map", Count: 1}}, gedcom.NewRegistry(tr), "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"#84beff"}, pc.Colors)
}

func TestMediaTypes(t *testing.T) {
	r, tr := newTestRenderer(t, language.English)
	reg := gedcom.NewRegistry(tr)

	html, err := r.MediaTypes(nil, reg, "", "")
	require.NoError(t, err)
	assert.Empty(t, html)

	html, err = r.MediaTypes([]MediaCount{{Type: "photo", Count: 3}}, reg, "", "")
	require.NoError(t, err)
	s := string(html)
	assert.True(t, strings.HasPrefix(s, `<script src="https://www.gstatic.com/charts/loader.js"></script>`))
	assert.Contains(t, s, `<div class="chart chart-pie" data-language="en"`)
	assert.Contains(t, s, "&#34;Photo&#34;,3")
	assert.NotContains(t, s, "title=")
	assert.Contains(t, s, "google.visualization.PieChart(el).draw(data")
	assert.Contains(t, s, "google.visualization.arrayToDataTable(JSON.parse(el.dataset.chart))")
	assert.True(t, strings.HasSuffix(s, "</script>"))

	_, err = r.MediaTypes([]MediaCount{{Type: "photo", Count: 3}}, reg, "zzz", "")
	assert.Error(t, err)
}

func TestMediaCountsFrom(t *testing.T) {
	got := MediaCountsFrom([]models.MediaTypeCount{{Type: "photo", Count: 2}})
	assert.Equal(t, []MediaCount{{Type: "photo", Count: 2}}, got)
	assert.Empty(t, MediaCountsFrom(nil))
}
