package generator

import (
	"regexp"
	"strings"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/naming"
	"github.com/agentx-labs/new-component/internal/templates"
)

var langPattern = regexp.MustCompile(`^[A-Za-z0-9]+([-_][A-Za-z0-9]+)*$`)

// Request is the validated input of one generation run.
type Request struct {
	ComponentName string
	LanguageCode  string
}

// NewRequest validates name and lang. An empty lang falls back to
// naming.DefaultLanguage.
func NewRequest(name, lang string) (Request, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Request{}, missingNameError()
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return Request{}, &UsageError{Message: "Sorry, the component name " + quote(name) + " cannot contain path separators."}
	}

	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = naming.DefaultLanguage
	}
	if !langPattern.MatchString(lang) {
		return Request{}, &UsageError{Message: "Sorry, " + quote(lang) + " is not a valid language code (expected something like \"en-en\")."}
	}

	return Request{ComponentName: name, LanguageCode: lang}, nil
}

func (r Request) values() templates.Values {
	return templates.NewValues(r.ComponentName, r.LanguageCode)
}

func missingNameError() *UsageError {
	return &UsageError{Message: "Sorry, you need to specify a name for your component like this: " + branding.CLIName() + " <name>"}
}

func quote(s string) string {
	return `"` + s + `"`
}
