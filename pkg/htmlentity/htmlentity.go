// Package htmlentity decodes the small set of HTML character entities that
// show up in feed titles and descriptions. The table is deliberately closed:
// anything outside it is left untouched so that odd or broken markup passes
// through instead of being mangled.
package htmlentity

import "strings"

var replacer = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
	"&#8220;", "“",
	"&#8221;", "”",
	"&#8216;", "‘",
	"&#8217;", "’",
	"&#8212;", "—",
	"&#8211;", "–",
	"&#8230;", "…",
	"&#8209;", "‐",
	"&#174;", "®",
	"&#169;", "©",
	"&#8482;", "™",
	"&#160;", " ",
)

// Decode replaces known entities with their literal characters in a single
// pass. Replacement output is not rescanned, so "&amp;lt;" becomes "&lt;"
// and stops there.
func Decode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return replacer.Replace(s)
}
