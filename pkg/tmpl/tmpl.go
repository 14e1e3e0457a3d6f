// Package tmpl renders text/template documents with a small markdown-oriented
// function set.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "#", `\#`, "|", `\|`,
)

// mdEscape escapes characters that markdown would otherwise interpret.
func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

// plural returns word unchanged for n == 1 and its English plural otherwise.
// Only the consonant+y rule is handled.
func plural(n int, word string) string {
	if n == 1 || word == "" {
		return word
	}
	if len(word) > 1 && strings.HasSuffix(word, "y") && !strings.ContainsRune("aeiou", rune(word[len(word)-2])) {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}

// bar draws a fixed-width progress bar for pct in [0, 100].
func bar(width int, pct float64) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

var funcs = template.FuncMap{
	"md":     mdEscape,
	"join":   strings.Join,
	"plural": plural,
	"bar":    bar,
	"upper":  strings.ToUpper,
	"add":    func(a, b int) int { return a + b },
}

// Funcs returns a copy of the built-in function map.
func Funcs() template.FuncMap {
	out := make(template.FuncMap, len(funcs))
	for k, v := range funcs {
		out[k] = v
	}
	return out
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - md: Escape markdown control characters
//   - join: Join string slice with separator (e.g., join .Names ", ")
//   - plural: Pluralize a word by count (e.g., plural .Count "city")
//   - bar: Draw a text progress bar (e.g., bar 20 .Percent)
//   - upper, add
func Render(tmpl string, data any) (string, error) {
	t, err := parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// Validate parses tmpl without executing it.
func Validate(tmpl string) error {
	_, err := parse(tmpl)
	return err
}

func parse(tmpl string) (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return t, nil
}
