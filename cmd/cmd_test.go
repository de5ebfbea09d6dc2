package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/gedref/internal/daemon"
)

const testGedcom = `0 HEAD
1 FILE royal.ged
0 @I1@ INDI
1 NAME Victoria /Hanover/
1 BIRT
2 DATE 24 MAY 1819
2 SOUR @S1@
0 @I2@ INDI
1 NAME Albert /Saxe-Coburg/
0 @F1@ FAM
1 HUSB @I2@
1 WIFE @I1@
0 @S1@ SOUR
1 TITL Court circular
0 @M1@ OBJE
1 FILE portrait.jpg
2 FORM jpg
3 TYPE photo
0 TRLR
`

// captureUI points the shared UI at buffers.
func captureUI(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	ui.Out = out
	ui.ErrOut = errOut
	return out, errOut
}

func writeGedcom(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "royal.ged")
	require.NoError(t, os.WriteFile(path, []byte(testGedcom), 0644))
	return path
}

func TestTagListRun_Prefix(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, tagListRun("BAPL"))
	assert.Contains(t, out.String(), "BAPL:PLAC")
	assert.Contains(t, out.String(), "Place of LDS baptism")
	assert.NotContains(t, out.String(), "BIRT")
}

func TestTagListRun_NoMatch(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, tagListRun("ZZZ"))
	assert.Contains(t, out.String(), "No tags match")
}

func TestTagLabelRun(t *testing.T) {
	testEnv(t)
	out, errOut := captureUI(t)

	require.NoError(t, tagLabelRun("_UID", ""))
	assert.Equal(t, "Unique identifier\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTagLabelRun_UnknownTagWarns(t *testing.T) {
	testEnv(t)
	out, errOut := captureUI(t)

	require.NoError(t, tagLabelRun("XYZZY", ""))
	assert.Equal(t, "XYZZY\n", out.String())
	assert.Contains(t, errOut.String(), "not a known tag")
}

func TestTagLabelRun_Value(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)
	tagElement = "span"
	t.Cleanup(func() { tagElement = "div" })

	require.NoError(t, tagLabelRun("OCCU", "Farmer & Sons"))
	assert.Contains(t, out.String(), `<span class="fact_OCCU">`)
	assert.Contains(t, out.String(), "Farmer &amp; Sons")
}

func TestTagLabelRun_French(t *testing.T) {
	testEnv(t)
	viper.Set("language", "fr")
	out, _ := captureUI(t)

	require.NoError(t, tagLabelRun("OCCU", "Fermier"))
	assert.Contains(t, out.String(), " :</span>")
}

func TestTagPicklistRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, tagPicklistRun("repo"))
	assert.Contains(t, out.String(), "PHON")
	assert.Contains(t, out.String(), "WWW")
}

func TestTagPicklistRun_Unknown(t *testing.T) {
	testEnv(t)
	captureUI(t)

	err := tagPicklistRun("SUBM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INDI, FAM, SOUR, REPO, PLAC, NAME")
}

func TestTagMediaTypesRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, tagMediaTypesRun())
	assert.Contains(t, out.String(), "Coat of arms")
	assert.Contains(t, out.String(), "Microfiche")
}

func TestUIDNewRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, uidNewRun(3))
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Len(t, l, 36)
	}
	assert.Error(t, uidNewRun(0))
}

func TestUIDCheckRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)
	require.NoError(t, uidNewRun(1))
	uid := string(bytes.TrimSpace(out.Bytes()))

	captureUI(t)
	assert.NoError(t, uidCheckRun([]string{uid}))

	_, errOut := captureUI(t)
	err := uidCheckRun([]string{uid, "not-a-uid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, errOut.String(), "not-a-uid")
}

func TestLocaleShowRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, localeShowRun("ar_IL"))
	assert.Contains(t, out.String(), "ar-IL")
	assert.Contains(t, out.String(), "rtl")
	assert.Contains(t, out.String(), "IL (Israel)")
}

func TestLocaleShowRun_Invalid(t *testing.T) {
	testEnv(t)
	captureUI(t)

	assert.Error(t, localeShowRun(""))
}

func TestLocaleTerritoryRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, localeTerritoryRun("tt"))
	assert.Contains(t, out.String(), "TT\tTrinidad")

	assert.Error(t, localeTerritoryRun("QQ"))
}

func TestLocaleListRun(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, localeListRun())
	assert.Contains(t, out.String(), "mas-TZ")
	assert.Contains(t, out.String(), "en-TT")
}

func TestTreeLifecycle(t *testing.T) {
	dir := testEnv(t)
	path := writeGedcom(t, dir)

	out, _ := captureUI(t)
	require.NoError(t, treeImportRun(path, ""))
	assert.Contains(t, out.String(), "Created tree")
	assert.Contains(t, out.String(), "royal")
	assert.Contains(t, out.String(), "have no _UID")

	out, _ = captureUI(t)
	require.NoError(t, treeImportRun(path, ""))
	assert.Contains(t, out.String(), "Updated tree")

	out, _ = captureUI(t)
	require.NoError(t, treeListRun())
	assert.Contains(t, out.String(), "royal")

	out, _ = captureUI(t)
	require.NoError(t, treeStatsRun("royal"))
	assert.Contains(t, out.String(), "Individual")
	assert.Contains(t, out.String(), "50.0%")
	assert.Contains(t, out.String(), "Photo")

	out, _ = captureUI(t)
	require.NoError(t, treeDeleteRun("royal"))
	assert.Contains(t, out.String(), "Deleted tree: royal")

	assert.Error(t, treeStatsRun("royal"))
}

func TestTreeListRun_Empty(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, treeListRun())
	assert.Contains(t, out.String(), "No trees")
}

func TestTreeImportRun_DryRun(t *testing.T) {
	dir := testEnv(t)
	path := writeGedcom(t, dir)
	dryRun = true
	ui.DryRun = true
	t.Cleanup(func() { dryRun = false })

	_, errOut := captureUI(t)
	require.NoError(t, treeImportRun(path, "dry"))
	assert.Contains(t, errOut.String(), "Would import")

	dryRun = false
	captureUI(t)
	assert.Error(t, treeStatsRun("dry"))
}

func TestChartCommands(t *testing.T) {
	dir := testEnv(t)
	path := writeGedcom(t, dir)
	captureUI(t)
	require.NoError(t, treeImportRun(path, "royal"))

	out, _ := captureUI(t)
	require.NoError(t, chartSourcesRun("royal", false))
	assert.Contains(t, out.String(), `<div class="chart chart-google">`)
	assert.Contains(t, out.String(), "Individuals with sources")

	out, _ = captureUI(t)
	require.NoError(t, chartSourcesRun("royal", true))
	assert.Contains(t, out.String(), "Families with sources")

	out, _ = captureUI(t)
	require.NoError(t, chartMediaRun("royal", 10))
	assert.Contains(t, out.String(), `chart-pie`)
	assert.Contains(t, out.String(), "Photo")

	assert.Error(t, chartMediaRun("royal", -1))
}

func TestPrintSourcesChart_URL(t *testing.T) {
	testEnv(t)
	chartURLOnly = true
	t.Cleanup(func() { chartURLOnly = false })
	tr, err := getTranslator()
	require.NoError(t, err)

	out, _ := captureUI(t)
	require.NoError(t, printSourcesChart(tr, false, 8, 4))
	assert.Contains(t, out.String(), "https://chart.googleapis.com/chart?")
	assert.Contains(t, out.String(), "chd=e%3AAyAy")

	out, _ = captureUI(t)
	require.NoError(t, printSourcesChart(tr, false, 0, 0))
	assert.Contains(t, out.String(), "Nothing to chart")

	assert.Error(t, printSourcesChart(tr, false, 2, 3))
}

func TestServeStatusRun_NotRunning(t *testing.T) {
	testEnv(t)
	out, _ := captureUI(t)

	require.NoError(t, serveStatusRun())
	assert.Contains(t, out.String(), "No API server running")
}

func TestServeStopRun_ClearsStaleState(t *testing.T) {
	testEnv(t)
	state := serverState()
	require.NoError(t, state.SaveState(daemon.State{PID: 999999, Port: 8080}))

	out, _ := captureUI(t)
	require.NoError(t, serveStopRun())
	assert.Contains(t, out.String(), "No API server running")

	_, err := os.Stat(state.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestServeRun_RefusesSecondServer(t *testing.T) {
	testEnv(t)
	require.NoError(t, serverState().Save(8080))

	err := serveRun(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}
