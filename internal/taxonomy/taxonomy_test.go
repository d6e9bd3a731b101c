package taxonomy

import (
	"reflect"
	"testing"
)

func mustKeywords(t *testing.T, categoryKey, lang string) []string {
	t.Helper()
	cat, ok := CategoryByKey(categoryKey)
	if !ok {
		t.Fatalf("category %q not found", categoryKey)
	}
	kws, ok := cat.Keywords[lang]
	if !ok {
		t.Fatalf("category %q has no %q keyword list", categoryKey, lang)
	}
	return kws
}

func TestKeywordsFor_FallbackChain(t *testing.T) {
	tests := []struct {
		name        string
		categoryKey string
		localeCode  string
		want        []string
	}{
		{
			name:        "language without list falls back to English",
			categoryKey: "animals",
			localeCode:  "pt_BR",
			want:        mustKeywords(t, "animals", "en"),
		},
		{
			name:        "base language entry returned verbatim",
			categoryKey: "animals",
			localeCode:  "es_MX",
			want:        mustKeywords(t, "animals", "es"),
		},
		{
			name:        "unknown locale falls back to English",
			categoryKey: "foods",
			localeCode:  "xx_YY",
			want:        mustKeywords(t, "foods", "en"),
		},
		{
			name:        "unknown category",
			categoryKey: "nope",
			localeCode:  "en_US",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordsFor(tt.categoryKey, tt.localeCode)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeywordsFor(%q, %q) = %v, want %v", tt.categoryKey, tt.localeCode, got, tt.want)
			}
		})
	}
}

func TestKeywordsFor_FullLocaleBeatsBaseLanguage(t *testing.T) {
	cat, ok := CategoryByKey("animals")
	if !ok {
		t.Fatal("animals category not found")
	}
	want := []string{"capivara", "arara"}
	cat.Keywords["pt_BR"] = want
	defer delete(cat.Keywords, "pt_BR")

	got := KeywordsFor("animals", "pt_BR")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeywordsFor(animals, pt_BR) = %v, want full-locale list %v", got, want)
	}
}

func TestLanguageParam(t *testing.T) {
	tests := []struct {
		name       string
		localeCode string
		source     string
		wantParam  string
		wantOK     bool
	}{
		{name: "filtered source", localeCode: "pt_BR", source: SourcePixabay, wantParam: "pt", wantOK: true},
		{name: "known locale without filter", localeCode: "he_IL", source: SourcePixabay, wantParam: "", wantOK: true},
		{name: "source-specific filter", localeCode: "id_ID", source: SourcePexels, wantParam: "id", wantOK: true},
		{name: "same locale unfiltered elsewhere", localeCode: "id_ID", source: SourcePixabay, wantParam: "", wantOK: true},
		{name: "unknown locale", localeCode: "xx_YY", source: SourcePixabay, wantParam: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param, ok := LanguageParam(tt.localeCode, tt.source)
			if param != tt.wantParam || ok != tt.wantOK {
				t.Errorf("LanguageParam(%q, %q) = (%q, %v), want (%q, %v)",
					tt.localeCode, tt.source, param, ok, tt.wantParam, tt.wantOK)
			}
		})
	}
}

func TestTableSizes(t *testing.T) {
	if got := len(Locales()); got != 39 {
		t.Errorf("len(Locales()) = %d, want 39", got)
	}
	if got := len(Categories()); got != 12 {
		t.Errorf("len(Categories()) = %d, want 12", got)
	}
}

func TestHighPriority(t *testing.T) {
	tests := []struct {
		localeCode string
		want       bool
	}{
		{"ja_JP", true},
		{"pt_BR", true},
		{"he_IL", false},
		{"fi_FI", false},
	}

	for _, tt := range tests {
		l, ok := LocaleByCode(tt.localeCode)
		if !ok {
			t.Fatalf("locale %q not found", tt.localeCode)
		}
		if got := HighPriority(l); got != tt.want {
			t.Errorf("HighPriority(%s) = %v, want %v", tt.localeCode, got, tt.want)
		}
	}
}

func TestBaseLanguage(t *testing.T) {
	if got := BaseLanguage("pt_BR"); got != "pt" {
		t.Errorf("BaseLanguage(pt_BR) = %q, want pt", got)
	}
	if got := BaseLanguage("en"); got != "en" {
		t.Errorf("BaseLanguage(en) = %q, want en", got)
	}
}
