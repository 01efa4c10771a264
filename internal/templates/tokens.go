package templates

import (
	"strings"

	"github.com/agentx-labs/new-component/internal/naming"
)

// Values are the request-derived replacements for the placeholder tokens.
type Values struct {
	ComponentName string
	ClassesName   string
	Language      string
	LanguageIdent string
	LanguageName  string
}

// NewValues derives every replacement from a component name and language code.
func NewValues(componentName, lang string) Values {
	return Values{
		ComponentName: componentName,
		ClassesName:   naming.ResolveClassesName(componentName),
		Language:      lang,
		LanguageIdent: naming.UnderscoreLanguage(lang),
		LanguageName:  naming.ResolveLanguageName(lang),
	}
}

// Token is a literal, case-sensitive placeholder and the value it stands for.
type Token struct {
	Marker string
	value  func(Values) string
}

// Tokens lists the placeholders in replacement priority order.
var Tokens = []Token{
	{Marker: "COMPONENT_NAME", value: func(v Values) string { return v.ComponentName }},
	{Marker: "component_name", value: func(v Values) string { return v.ClassesName }},
	{Marker: "LANG-LANG", value: func(v Values) string { return v.Language }},
	{Marker: "LANG_LANG", value: func(v Values) string { return v.LanguageIdent }},
	{Marker: "lang-LANG", value: func(v Values) string { return v.LanguageName }},
}

// NewReplacer returns a replacer that substitutes every occurrence of every
// token in a single pass, so a replacement value is never re-scanned for
// markers.
func NewReplacer(v Values) *strings.Replacer {
	pairs := make([]string, 0, 2*len(Tokens))
	for _, tok := range Tokens {
		pairs = append(pairs, tok.Marker, tok.value(v))
	}
	return strings.NewReplacer(pairs...)
}

// Placeholders reports the tokens still present in text.
func Placeholders(text string) []string {
	var found []string
	for _, tok := range Tokens {
		if strings.Contains(text, tok.Marker) {
			found = append(found, tok.Marker)
		}
	}
	return found
}
