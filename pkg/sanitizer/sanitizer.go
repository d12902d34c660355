// Package sanitizer reduces feed item HTML to displayable plain text.
package sanitizer

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"risible/backend/pkg/htmlentity"
)

var (
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// Sanitize converts an HTML fragment into trimmed plain text: entities are
// decoded, script/style blocks are dropped with their bodies, remaining tags
// are stripped, and whitespace runs collapse to a single space. Descriptions
// frequently arrive double-escaped, so entities are decoded again after tag
// stripping. Malformed markup never fails; stray '<' is kept as text.
func Sanitize(input string) string {
	text := htmlentity.Decode(input)
	text = scriptBlockRegex.ReplaceAllString(text, " ")
	text = styleBlockRegex.ReplaceAllString(text, " ")
	text = StripTags(text)
	text = htmlentity.Decode(text)
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripTags removes all HTML/XML tags from the input, keeping only text
// content. Text is taken from the tokenizer's raw bytes so that entities
// survive untouched for the fixed-table decoder.
//
// This is content cleanup only, not an XSS defense.
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") {
		return input
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return strings.TrimSpace(buf.String())
		}

		if tt == html.TextToken {
			buf.Write(tokenizer.Raw())
		} else {
			// Tags act as word separators; the collapse pass folds the
			// extra spaces away.
			buf.WriteByte(' ')
		}
	}

	return strings.TrimSpace(buf.String())
}
