package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Default is used whenever no supported language matches.
const Default = "en"

type supportedLanguage struct {
	tag  language.Tag
	code string
}

// supported lists the message catalogs shipped with the extension. The
// first entry is the matcher fallback.
var supported = []supportedLanguage{
	{language.English, "en"},
	{language.German, "de"},
	{language.French, "fr"},
	{language.Italian, "it"},
	{language.LatinAmericanSpanish, "es_419"},
	{language.Spanish, "es"},
	{language.Japanese, "ja"},
	{language.Russian, "ru"},
	{language.Korean, "ko"},
	{language.Dutch, "nl"},
	{language.Polish, "pl"},
	{language.BrazilianPortuguese, "pt_BR"},
	{language.EuropeanPortuguese, "pt_PT"},
	{language.SimplifiedChinese, "zh_CN"},
	{language.TraditionalChinese, "zh_TW"},
}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}

// Codes returns every supported catalog code.
func Codes() []string {
	codes := make([]string, len(supported))
	for i, s := range supported {
		codes[i] = s.code
	}
	return codes
}

// LanguageCode maps the most preferred language onto a supported catalog
// code. Only the first non-empty entry of preferred is considered.
func LanguageCode(preferred []string) string {
	for _, lang := range preferred {
		if strings.TrimSpace(lang) == "" {
			continue
		}
		return match(lang)
	}
	return Default
}

func match(lang string) string {
	tag, err := language.Parse(Normalize(lang))
	if err != nil {
		return Default
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default
	}

	// Only regional variants of the requested language count as a match.
	requested, _ := tag.Base()
	matched, _ := supported[index].tag.Base()
	if requested != matched {
		return Default
	}
	return supported[index].code
}

// Normalize turns POSIX locale names ("pt_BR.UTF-8@euro") into BCP 47 form.
func Normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexByte(lang, '.'); i > 0 {
		lang = lang[:i]
	}
	if i := strings.IndexByte(lang, '@'); i > 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}

// FromAcceptLanguage parses an Accept-Language header into an ordered list.
func FromAcceptLanguage(header string) []string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	langs := make([]string, 0, len(tags))
	for _, tag := range tags {
		langs = append(langs, tag.String())
	}
	return langs
}

// FromEnv returns the preferred languages of the process locale.
func FromEnv() []string {
	if v := os.Getenv("LANGUAGE"); v != "" {
		return strings.Split(v, ":")
	}

	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return []string{v}
	}
	return nil
}
