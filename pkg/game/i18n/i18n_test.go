package i18n

import (
	"fmt"
	"reflect"
	"testing"
)

func TestUse_KnownLanguages(t *testing.T) {
	defer Use(DefaultLanguage)

	tests := []struct {
		lang string
		want string
	}{
		{"en", "Score: 7"},
		{"es", "Puntos: 7"},
		{"es_ES.UTF-8", "Puntos: 7"},
	}
	for _, tt := range tests {
		Use(tt.lang)
		if got := fmt.Sprintf(T("SCORE"), 7); got != tt.want {
			t.Errorf("Use(%q); Sprintf(T(SCORE), 7) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestUse_FallsBackToEnglish(t *testing.T) {
	defer Use(DefaultLanguage)

	if got := Use("klingon"); got != DefaultLanguage {
		t.Errorf("Use(klingon) = %q, want %q", got, DefaultLanguage)
	}
	if got := T("WINDOW_TITLE"); got != "Blockfall" {
		t.Errorf("T(WINDOW_TITLE) = %q, want Blockfall", got)
	}
}

func TestT_EveryKeyTranslated(t *testing.T) {
	defer Use(DefaultLanguage)

	keys := []string{"SCORE", "CONTROLS", "GOODBYE", "WINDOW_TITLE", "TOPPED_OUT"}
	for _, lang := range Languages() {
		Use(lang)
		for _, key := range keys {
			if got := T(key); got == key {
				t.Errorf("%s: T(%s) returned the key untranslated", lang, key)
			}
		}
	}
}

func TestLanguages(t *testing.T) {
	want := []string{"en", "es"}
	if got := Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestT_KeepsFormatVerbs(t *testing.T) {
	defer Use(DefaultLanguage)

	Use("en")
	if got := T("GOODBYE"); got != "Thanks for playing! Final score: %d" {
		t.Errorf("T(GOODBYE) = %q, want the unformatted message", got)
	}
}
