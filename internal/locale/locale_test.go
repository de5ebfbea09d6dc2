package locale

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/joescharf/gedref/internal/i18n"
)

func TestParse_Territory(t *testing.T) {
	tests := []struct {
		code      string
		want      string
		lang      string
		territory string
	}{
		{"ar-IL", "ar-IL", "ar", "IL"},
		{"en-TT", "en-TT", "en", "TT"},
		{"mas-TZ", "mas-TZ", "mas", "TZ"},
		{"mas_TZ", "mas-TZ", "mas", "TZ"},
		{"zh-Hans-CN", "zh-Hans-CN", "zh", "CN"},
		{" fr_be ", "fr-BE", "fr", "BE"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			l, err := Parse(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Code())
			assert.Equal(t, tt.want, l.String())
			assert.Equal(t, tt.lang, l.Language())
			assert.Equal(t, tt.territory, l.Territory().Code())
		})
	}
}

func TestParse_LikelyTerritory(t *testing.T) {
	l, err := Parse("fr")
	require.NoError(t, err)
	assert.Equal(t, "FR", l.Territory().Code())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrInvalidLocale)

	_, err = Parse("not a locale")
	assert.ErrorIs(t, err, ErrInvalidLocale)

	_, err = Parse("und")
	assert.ErrorIs(t, err, ErrUnknownTerritory)
}

func TestParse_UndeterminedLanguage(t *testing.T) {
	for _, code := range []string{"und", "und_US", "und-Latn"} {
		_, err := Parse(code)
		assert.ErrorIs(t, err, ErrUnknownTerritory, code)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
	assert.NotPanics(t, func() { MustParse("en-US") })
}

func TestDirection(t *testing.T) {
	assert.Equal(t, i18n.RTL, MustParse("ar-IL").Direction())
	assert.Equal(t, i18n.RTL, MustParse("he-IL").Direction())
	assert.Equal(t, i18n.LTR, MustParse("en-TT").Direction())
}

func TestEndonym(t *testing.T) {
	assert.Contains(t, MustParse("fr-FR").Endonym(), "français")
	assert.Contains(t, MustParse("de-DE").Endonym(), "Deutsch")
}

func TestKnown(t *testing.T) {
	known := Known()
	require.Len(t, known, len(knownLocales))

	codes := make([]string, len(known))
	for i, l := range known {
		codes[i] = l.Code()
	}
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "ar-IL")
	assert.Contains(t, codes, "en-TT")
	assert.Contains(t, codes, "mas-TZ")
}

func TestTerritoryByCode(t *testing.T) {
	ta, err := TerritoryByCode("ta")
	require.NoError(t, err)
	assert.Equal(t, "TA", ta.Code())
	assert.Equal(t, "TA", ta.String())

	il, err := TerritoryByCode("IL")
	require.NoError(t, err)
	assert.Equal(t, "Israel", il.Name(language.English))

	_, err = TerritoryByCode("QQ")
	assert.ErrorIs(t, err, ErrUnknownTerritory)
	_, err = TerritoryByCode("")
	assert.ErrorIs(t, err, ErrUnknownTerritory)
}

func TestTerritory_NameFallsBackToCode(t *testing.T) {
	assert.Equal(t, "XX", Territory{code: "XX"}.Name(language.English))
}

func TestTerritories(t *testing.T) {
	all := Territories()
	require.Len(t, all, len(territoryCodes))

	codes := make([]string, len(all))
	for i, tr := range all {
		codes[i] = tr.Code()
		assert.Len(t, tr.Code(), 2)
		assert.NotEmpty(t, tr.Name(language.English))
	}
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "TA")
	assert.Contains(t, codes, "XK")
}
