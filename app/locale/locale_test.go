package locale

import (
	"testing"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		preferred []string
		want      string
	}{
		{[]string{"en-US"}, "en"},
		{[]string{"de-DE"}, "de"},
		{[]string{"fr"}, "fr"},
		{[]string{"it-IT"}, "it"},
		{[]string{"es-419"}, "es_419"},
		{[]string{"es-ES"}, "es"},
		{[]string{"ja"}, "ja"},
		{[]string{"ru-RU"}, "ru"},
		{[]string{"ko-KR"}, "ko"},
		{[]string{"nl"}, "nl"},
		{[]string{"pl-PL"}, "pl"},
		{[]string{"pt-BR"}, "pt_BR"},
		{[]string{"pt-PT"}, "pt_PT"},
		{[]string{"zh-CN"}, "zh_CN"},
		{[]string{"zh-TW"}, "zh_TW"},
		{[]string{"pt_BR.UTF-8"}, "pt_BR"},
		{[]string{"DE_at"}, "de"},
		{[]string{"sw"}, "en"},
		{[]string{"eu"}, "en"},
		{[]string{"gl"}, "en"},
		{[]string{"af"}, "en"},
		{[]string{"be-BY"}, "en"},
		{[]string{"fy"}, "en"},
		{[]string{"!!"}, "en"},
		{[]string{"", "  ", "ja-JP"}, "ja"},
		{[]string{"de", "fr"}, "de"},
		{nil, "en"},
	}

	for _, tt := range tests {
		if got := LanguageCode(tt.preferred); got != tt.want {
			t.Errorf("LanguageCode(%q) = %q, want %q", tt.preferred, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en_US.UTF-8", "en-US"},
		{"de_DE@euro", "de-DE"},
		{" fr ", "fr"},
		{"zh-TW", "zh-TW"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	langs := FromAcceptLanguage("en;q=0.7, fr-CH, fr;q=0.9")
	if len(langs) != 3 {
		t.Fatalf("Expected 3 languages, got %v", langs)
	}
	if langs[0] != "fr-CH" {
		t.Errorf("Expected highest quality language first, got %v", langs)
	}
	if got := LanguageCode(langs); got != "fr" {
		t.Errorf("Expected 'fr', got %q", got)
	}

	if got := FromAcceptLanguage(""); len(got) != 0 {
		t.Errorf("Expected no languages for empty header, got %v", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "pl_PL.UTF-8")

	langs := FromEnv()
	if len(langs) != 1 || langs[0] != "pl_PL.UTF-8" {
		t.Fatalf("Expected [pl_PL.UTF-8], got %v", langs)
	}
	if got := LanguageCode(langs); got != "pl" {
		t.Errorf("Expected 'pl', got %q", got)
	}

	t.Setenv("LANGUAGE", "nl:en")
	langs = FromEnv()
	if len(langs) != 2 || langs[0] != "nl" {
		t.Errorf("Expected [nl en], got %v", langs)
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != 15 {
		t.Errorf("Expected 15 codes, got %d", len(codes))
	}
	if codes[0] != Default {
		t.Errorf("Expected default code first, got %q", codes[0])
	}
}
