// Package sanitizer escapes text for safe embedding in HTML markup.
//
// EscapeHTML replaces the five characters that are significant in HTML with
// their entities:
//
//	&  ->  &amp;
//	<  ->  &lt;
//	>  ->  &gt;
//	"  ->  &quot;
//	'  ->  &#039;
//
// The replacement is done in a single pass over the input, so the ampersands
// introduced by entities are never escaped a second time:
//
//	sanitizer.EscapeHTML(`&<>"'`) // "&amp;&lt;&gt;&quot;&#039;"
//
// UnescapeHTML is the exact inverse for these five entities and leaves every
// other entity untouched, so UnescapeHTML(EscapeHTML(s)) == s for any s.
//
// # Usage
//
//	import "github.com/dmitrymomot/primkit/pkg/sanitizer"
//
//	safe := sanitizer.EscapeHTML(`<div class="t">`)
//	// safe == "&lt;div class=&quot;t&quot;&gt;"
//
// # Error handling
//
// None of the helpers returns an error. Every string input has a defined output.
//
// The package has no global mutable state and is safe for concurrent use.
package sanitizer
