// Package parser turns raw RSS 2.0 / Atom bytes into a normalized feed.
//
// The walk is a streaming token loop, not a DOM load: feeds in the wild are
// large, inconsistently namespaced and frequently malformed, and the loop
// only ever tracks the buffers of the item currently being read.
package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"risible/backend/internal/model"
	"risible/backend/pkg/dateutil"
	"risible/backend/pkg/htmlentity"
	"risible/backend/pkg/sanitizer"
)

type Parser struct {
	now func() time.Time
}

func New() *Parser {
	return &Parser{now: time.Now}
}

// itemState holds the accumulation buffers for the item being parsed.
// Reset whenever an <item> or <entry> opens.
type itemState struct {
	title       string
	link        string
	description string
	pubDate     string
	imageURL    *string
}

// Parse reads the document and returns the feed title plus every item that
// carries both a title and a link. An item's missing or broken publish date
// falls back to the current time, never to an error. A document the tokenizer
// cannot read at all returns an error and no partial result.
func (p *Parser) Parse(data []byte) (*model.ParsedFeed, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		// Accept whatever encoding the feed declares rather than failing;
		// non-UTF-8 bytes pass through as-is.
		return input, nil
	}

	var (
		feedTitle      string
		items          []model.ParsedItem
		current        itemState
		currentElement string
		inItem         bool
		sawElement     bool
	)

	for {
		token, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse feed: %w", err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			sawElement = true
			name := el.Name.Local
			currentElement = name

			if name == "item" || name == "entry" {
				inItem = true
				current = itemState{}
				continue
			}

			if inItem {
				switch {
				case isMediaImage(el):
					// media:content / media:thumbnail carry the URL as an
					// attribute; their character data is irrelevant.
					if current.imageURL == nil {
						if url, ok := attr(el, "url"); ok {
							current.imageURL = &url
						}
					}
					currentElement = ""
				case name == "enclosure":
					if current.imageURL == nil {
						if kind, ok := attr(el, "type"); ok && strings.HasPrefix(kind, "image/") {
							if url, ok := attr(el, "url"); ok {
								current.imageURL = &url
							}
						}
					}
				case name == "link":
					// Atom-style link. Text content seen earlier wins.
					if current.link == "" {
						if href, ok := attr(el, "href"); ok {
							current.link = href
						}
					}
				}
			}

		case xml.CharData:
			trimmed := strings.TrimSpace(string(el))
			if trimmed == "" {
				continue
			}

			if inItem {
				switch currentElement {
				case "title":
					current.title += trimmed
				case "link":
					// RSS-style link; only the first non-empty chunk counts.
					if current.link == "" {
						current.link += trimmed
					}
				case "description", "summary", "encoded", "content":
					current.description += trimmed
				case "pubDate", "published", "updated":
					current.pubDate += trimmed
				}
			} else if currentElement == "title" {
				feedTitle += trimmed
			}

		case xml.EndElement:
			if el.Name.Local != "item" && el.Name.Local != "entry" {
				continue
			}
			inItem = false

			if current.title == "" || current.link == "" {
				continue
			}
			items = append(items, p.finalizeItem(current))
		}
	}

	if !sawElement {
		return nil, fmt.Errorf("parse feed: no xml content")
	}

	return &model.ParsedFeed{
		Title: htmlentity.Decode(strings.TrimSpace(feedTitle)),
		Items: items,
	}, nil
}

func (p *Parser) finalizeItem(state itemState) model.ParsedItem {
	item := model.ParsedItem{
		Title:    htmlentity.Decode(strings.TrimSpace(state.title)),
		Link:     strings.TrimSpace(state.link),
		ImageURL: state.imageURL,
	}

	if desc := sanitizer.Sanitize(state.description); desc != "" {
		item.Description = &desc
	}

	if published, ok := dateutil.ParseFeedDate(state.pubDate); ok {
		item.PublishedAt = published
	} else {
		item.PublishedAt = p.now().UTC()
	}

	return item
}

// isMediaImage reports whether the element is a Media RSS image carrier:
// media:thumbnail, or media:content (distinguished from Atom <content> by
// its url attribute).
func isMediaImage(el xml.StartElement) bool {
	switch el.Name.Local {
	case "thumbnail":
		return true
	case "content":
		_, hasURL := attr(el, "url")
		return hasURL
	}
	return false
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
