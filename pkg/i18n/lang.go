package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "en"

// NormalizeLanguage canonicalises a language tag so that "pt_br", "PT-br"
// and "pt-BR" address the same table. Tags that do not parse are lower-cased.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	if lang == "" {
		return ""
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	return tag.String()
}

// baseLanguage returns the base language of a tag ("pt-BR" -> "pt"), or ""
// when the tag has no region or script to strip.
func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		if idx := strings.Index(lang, "-"); idx > 0 {
			return lang[:idx]
		}
		return ""
	}

	base, _ := tag.Base()
	if b := base.String(); b != lang {
		return b
	}
	return ""
}

// matchLanguage picks the supported language closest to the preference
// list. Exact and base-language matches are honoured in preference order;
// fallback is returned when nothing is close enough.
func matchLanguage(supported, preferred []string, fallback string) string {
	if len(supported) == 0 || len(preferred) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.Make(lang))
	}

	wanted := make([]language.Tag, 0, len(preferred))
	for _, lang := range preferred {
		tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
		if err != nil {
			continue
		}
		wanted = append(wanted, tag)
	}
	if len(wanted) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return fallback
	}
	return supported[idx]
}
