// Package naming derives the identifiers substituted into component
// templates: the style-class key for a component and the display label for a
// language code.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is used when no language code is configured.
const DefaultLanguage = "en-en"

// ResolveClassesName converts a component name into the lower-camel key used
// by the generated styles hook, e.g. "User Card" → "userCard".
// The result is always a valid JavaScript identifier.
func ResolveClassesName(componentName string) string {
	name := strings.TrimSpace(componentName)

	var id string
	if isASCII(name) {
		id = strings.Map(identRune, strcase.ToLowerCamel(name))
	} else {
		id = lowerCamelUnicode(name)
	}

	first, _ := utf8.DecodeRuneInString(id)
	if id == "" || unicode.IsDigit(first) {
		id = "c" + id
	}
	return id
}

// lowerCamelUnicode joins the words of name, lower-casing the first rune of
// the first word and upper-casing the first rune of every later word. The
// rest of each word is kept as written.
func lowerCamelUnicode(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return identRune(r) < 0 || r == '_'
	})

	var b strings.Builder
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if i == 0 {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		b.WriteString(w[size:])
	}
	return b.String()
}

// identRune keeps runes allowed in a JavaScript identifier and drops the rest.
func identRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
		return r
	}
	return -1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ResolveLanguageName returns the English name of the primary language of
// code ("en-en" → "English"). Unknown or malformed codes are returned as-is.
func ResolveLanguageName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultLanguage
	}

	subtags := strings.FieldsFunc(code, isLanguageSeparator)
	if len(subtags) == 0 {
		return code
	}

	base, err := language.ParseBase(subtags[0])
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(base); name != "" {
		return name
	}
	return code
}

// UnderscoreLanguage turns a language code into the identifier exported by
// the localization file and imported by the component ("en-en" → "en_en").
func UnderscoreLanguage(code string) string {
	return strings.ReplaceAll(code, "-", "_")
}

func isLanguageSeparator(r rune) bool {
	return r == '-' || r == '_'
}
