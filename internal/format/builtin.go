package format

import (
	"context"
	"fmt"
	"strings"
)

// sourceIndent is the indentation unit of the bundled templates.
const sourceIndent = 2

// Builtin normalizes layout without parsing the language: it re-indents
// leading whitespace, trims trailing whitespace, collapses blank-line runs and
// terminates the file with a single newline. Brackets outside strings and
// comments must balance.
type Builtin struct {
	opts Options
}

// NewBuiltin returns a Builtin formatter for opts.
func NewBuiltin(opts Options) *Builtin {
	return &Builtin{opts: opts}
}

// Format implements Formatter.
func (b *Builtin) Format(_ context.Context, filename, src string) (string, error) {
	if err := checkBalance(src); err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}

	src = strings.ReplaceAll(src, "\r\n", "\n")
	var out []string
	blank := false
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if len(out) == 0 || blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, b.reindent(line))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}

// reindent rewrites the leading whitespace of line. Tabs and pairs of spaces
// count as one level; a leftover single space (JSDoc continuation) is kept.
func (b *Builtin) reindent(line string) string {
	levels, spaces := 0, 0
	i := 0
loop:
	for ; i < len(line); i++ {
		switch line[i] {
		case '\t':
			levels++
		case ' ':
			spaces++
		default:
			break loop
		}
	}
	levels += spaces / sourceIndent
	rest := spaces % sourceIndent

	unit := strings.Repeat(" ", b.tabWidth())
	if b.opts.UseTabs {
		unit = "\t"
	}
	return strings.Repeat(unit, levels) + strings.Repeat(" ", rest) + line[i:]
}

func (b *Builtin) tabWidth() int {
	if b.opts.TabWidth <= 0 {
		return sourceIndent
	}
	return b.opts.TabWidth
}
