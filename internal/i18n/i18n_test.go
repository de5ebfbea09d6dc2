package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const labelValue = `<span class="label">%[1]s:</span> <span class="field" dir="auto">%[2]s</span>`

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	langs := b.Languages()
	require.NotEmpty(t, langs)
	assert.Equal(t, language.English, langs[0], "base language should be first")
	assert.Contains(t, langs, language.French)
	assert.Contains(t, langs, language.Arabic)

	assert.Equal(t, 1, b.MessageCount(language.English))
	assert.Equal(t, 90, b.MessageCount(language.French))
	assert.Zero(t, b.MessageCount(language.Japanese))
}

func TestLoadFromFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
		want string
	}{
		{
			name: "no files",
			fs:   fstest.MapFS{},
			want: "no catalog files",
		},
		{
			name: "missing base",
			fs: fstest.MapFS{
				"catalogs/fr.yaml": {Data: []byte("locale: fr\nmessages:\n  Birth: Naissance\n")},
			},
			want: "base locale en",
		},
		{
			name: "locale mismatch",
			fs: fstest.MapFS{
				"catalogs/en.yaml": {Data: []byte("locale: fr\n")},
			},
			want: "must match file name",
		},
		{
			name: "missing locale",
			fs: fstest.MapFS{
				"catalogs/en.yaml": {Data: []byte("messages:\n  Birth: Birth\n")},
			},
			want: "locale is required",
		},
		{
			name: "blank key",
			fs: fstest.MapFS{
				"catalogs/en.yaml": {Data: []byte("locale: en\nmessages:\n  \" \": x\n")},
			},
			want: "cannot be blank",
		},
		{
			name: "bad yaml",
			fs: fstest.MapFS{
				"catalogs/en.yaml": {Data: []byte("locale: [\n")},
			},
			want: "parse catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.fs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMatch(t *testing.T) {
	b := MustLoadEmbedded()

	assert.Equal(t, language.English, b.Match())
	assert.Equal(t, language.French, b.Match(language.CanadianFrench))
	assert.Equal(t, language.English, b.Match(language.Japanese))
	assert.Equal(t, language.German, b.Match(language.Japanese, language.German))
}

func TestParse(t *testing.T) {
	b := MustLoadEmbedded()

	tag, ok := b.Parse("fr_CA")
	assert.True(t, ok)
	assert.Equal(t, language.French, tag)

	tag, ok = b.Parse(" nl ")
	assert.True(t, ok)
	assert.Equal(t, language.Dutch, tag)

	_, ok = b.Parse("!!")
	assert.False(t, ok)
}

func TestTranslate(t *testing.T) {
	b := MustLoadEmbedded()

	fr := b.Translator(language.French)
	assert.Equal(t, "Naissance", fr.Translate("Birth"))
	assert.Equal(t, "Not translated anywhere", fr.Translate("Not translated anywhere"))
	assert.Equal(t,
		`<span class="label">Profession :</span> <span class="field" dir="auto">Fermier</span>`,
		fr.Translatef(labelValue, "Profession", "Fermier"))

	en := b.Translator(language.English)
	assert.Equal(t, "Birth", en.Translate("Birth"))
	assert.Equal(t,
		`<span class="label">Occupation:</span> <span class="field" dir="auto">Farmer</span>`,
		en.Translatef(labelValue, "Occupation", "Farmer"))
}

func TestTranslate_IsNotFormatted(t *testing.T) {
	fr := MustLoadEmbedded().Translator(language.French)

	assert.Equal(t, "100% sure", fr.Translate("100% sure"))
	assert.Equal(t, "%s", fr.Translate("%s"))
	assert.Equal(t, "Fermier", fr.Translatef("%s", "Fermier"))
}

func TestTranslator_FallsBackToBase(t *testing.T) {
	b := MustLoadEmbedded()

	tr := b.Translator(language.Japanese)
	assert.Equal(t, "en", tr.LanguageTag())
	assert.Equal(t, "Birth", tr.Translate("Birth"))
}

func TestPercentageAndNumber(t *testing.T) {
	en := MustLoadEmbedded().Translator(language.English)

	assert.Equal(t, "50.0%", en.Percentage(0.5, 1))
	assert.Equal(t, "33%", en.Percentage(1.0/3, 0))
	assert.Equal(t, "25%", en.Percentage(0.25, -1))
	assert.Equal(t, "1,234", en.Number(1234))
}

func TestDirection(t *testing.T) {
	b := MustLoadEmbedded()

	assert.Equal(t, RTL, b.Translator(language.Arabic).Direction())
	assert.Equal(t, LTR, b.Translator(language.French).Direction())
	assert.Equal(t, RTL, ScriptDirection(language.Hebrew))
	assert.Equal(t, RTL, ScriptDirection(language.MustParse("ur")))
	assert.Equal(t, LTR, ScriptDirection(language.MustParse("sr-Latn")))
}

func TestCompare(t *testing.T) {
	tr := MustLoadEmbedded().Translator(language.English)

	assert.Negative(t, tr.Compare("apple", "Banana"))
	assert.Positive(t, tr.Compare("cherry", "Banana"))
	assert.Zero(t, tr.Compare("Death", "death"))
}

func TestResolveTag(t *testing.T) {
	b := MustLoadEmbedded()

	tests := []struct {
		name    string
		target  string
		cookie  string
		accept  string
		want    language.Tag
		persist bool
	}{
		{name: "default", target: "/", want: language.English},
		{name: "query", target: "/?lang=fr", cookie: "de", accept: "nl", want: language.French, persist: true},
		{name: "cookie", target: "/", cookie: "de", accept: "nl", want: language.German},
		{name: "accept language", target: "/", accept: "nl-BE,nl;q=0.9,en;q=0.5", want: language.Dutch},
		{name: "invalid query falls through", target: "/?lang=!!", cookie: "ar", want: language.Arabic},
		{name: "unsupported", target: "/", accept: "ja", want: language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			tag, persist := b.ResolveTag(r)
			assert.Equal(t, tt.want, tag)
			assert.Equal(t, tt.persist, persist)
		})
	}

	tag, persist := b.ResolveTag(nil)
	assert.Equal(t, language.English, tag)
	assert.False(t, persist)
}

func TestSetLanguageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetLanguageCookie(w, language.French)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, LangCookieName, cookies[0].Name)
	assert.Equal(t, "fr", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}
