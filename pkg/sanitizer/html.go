package sanitizer

import "strings"

// htmlEscaper maps each reserved character to its entity in a single pass,
// so entities produced for one character are never escaped again.
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#039;",
)

var htmlUnescaper = strings.NewReplacer(
	"&amp;", `&`,
	"&lt;", `<`,
	"&gt;", `>`,
	"&quot;", `"`,
	"&#039;", `'`,
)

// EscapeHTML replaces &, <, >, " and ' with &amp;, &lt;, &gt;, &quot; and
// &#039;. All other characters are copied unchanged.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML. Only the five entities EscapeHTML emits
// are decoded; any other entity is left as is.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
