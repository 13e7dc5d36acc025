package export

import (
	"embed"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("export").Funcs(template.FuncMap{
	"pyquote": strconv.Quote,
	"pylist":  pyList,
	"shquote": shellQuote,
}).ParseFS(templatesFS, "templates/*.tmpl"))

func pyList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
