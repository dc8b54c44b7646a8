package urlmeta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractor returns a candidate value from a document or "" when it has none.
type extractor func(doc *goquery.Document) string

// The chains are ordered from the most curated source to the least.
var (
	titleChain = []extractor{ //nolint: gochecknoglobals
		metaContent(`meta[property="og:title"]`),
		metaContent(`meta[name="twitter:title"]`),
		titleText,
	}
	descriptionChain = []extractor{ //nolint: gochecknoglobals
		metaContent(`meta[property="og:description"]`),
		metaContent(`meta[name="twitter:description"]`),
		metaContent(`meta[name="description"]`),
	}
	logoChain = []extractor{ //nolint: gochecknoglobals
		linkHref("apple-touch-icon"),
		linkHref("icon"),
		linkHref("shortcut icon"),
		metaContent(`meta[property="og:image"]`),
	}
)

func metaContent(selector string) extractor {
	return func(doc *goquery.Document) string {
		content, _ := doc.Find(selector).First().Attr("content")

		return strings.TrimSpace(content)
	}
}

// linkHref returns the href of the first <link> whose rel equals rel,
// ignoring case.
func linkHref(rel string) extractor {
	return func(doc *goquery.Document) string {
		var href string
		doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if !strings.EqualFold(strings.TrimSpace(s.AttrOr("rel", "")), rel) {
				return true
			}
			href = strings.TrimSpace(s.AttrOr("href", ""))

			return false
		})

		return href
	}
}

func titleText(doc *goquery.Document) string {
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}

func firstNonEmpty(doc *goquery.Document, chain []extractor) string {
	for _, extract := range chain {
		if v := extract(doc); v != "" {
			return v
		}
	}

	return ""
}

// Title extracts the page title: og:title, twitter:title, then <title>.
func Title(doc *goquery.Document) string {
	return firstNonEmpty(doc, titleChain)
}

// Description extracts the page description: og:description,
// twitter:description, then the description meta tag.
func Description(doc *goquery.Document) string {
	return firstNonEmpty(doc, descriptionChain)
}

// Logo extracts an absolute icon URL: apple-touch-icon, icon, shortcut icon,
// og:image, then {scheme}://{host}/favicon.ico of base.
func Logo(doc *goquery.Document, base string) string {
	if ref := firstNonEmpty(doc, logoChain); ref != "" {
		return ResolveReference(ref, base)
	}

	return faviconURL(base)
}
