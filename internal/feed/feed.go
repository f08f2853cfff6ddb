package feed

import (
	"fmt"
	"html"
	"strings"
	"time"

	"sitefeed/internal/atom"
	"sitefeed/internal/config"
	"sitefeed/internal/model"
)

// Variant selects how feed entries are rendered.
type Variant int

const (
	// Standard renders entries as published on the site.
	Standard Variant = iota
	// CommunityRepost appends an attribution notice to each entry's content,
	// for feeds consumed by third-party community aggregators.
	CommunityRepost
)

const communityTitleSuffix = " - Community"

// Link rel/type constants used in the emitted document.
const (
	relSelf      = "self"
	relAlternate = "alternate"
	typeHTML     = "text/html"
	typeAtom     = "application/atom+xml"
)

// textHTML marks Atom text constructs (title, summary, content) as escaped
// HTML. RFC 4287 only allows text, html, or xhtml here; the MIME forms are
// reserved for link type attributes.
const textHTML = "html"

// attributionDateLayout renders the original publish date in the repost
// notice, e.g. "January 2, 2006".
const attributionDateLayout = "January 2, 2006"

// MissingSummaryError reports an entry without a summary. A summary-less
// entry is a content-authoring defect upstream; synthesis refuses to mask it
// with an empty or truncated fallback.
type MissingSummaryError struct {
	EntryID string
}

func (e *MissingSummaryError) Error() string {
	return fmt.Sprintf("entry %s has no summary", e.EntryID)
}

// Extras carries the opaque feed assets supplied by the caller rather than
// computed here: the feed's own URL, icon/logo references, and the generator
// identity string.
type Extras struct {
	SelfURL   string
	IconURL   string
	LogoURL   string
	Generator string
}

// Synthesize turns the site configuration and an ordered sequence of entries
// into a single Atom 1.0 document. Entry order is preserved exactly as given;
// sorting, deduplication and filtering are the caller's responsibility.
//
// The feed-level updated timestamp is the injected now value, so output is
// byte-identical across calls with equal inputs. If any entry lacks a
// summary, Synthesize fails with MissingSummaryError and emits nothing.
func Synthesize(site config.SiteConfig, variant Variant, entries []model.Entry, extras Extras, now time.Time) (string, error) {
	for _, e := range entries {
		if strings.TrimSpace(e.Summary) == "" {
			return "", &MissingSummaryError{EntryID: e.ID}
		}
	}

	title := site.Title
	if variant == CommunityRepost {
		title += communityTitleSuffix
	}
	author := atom.Person{Name: site.Author.Name, Email: site.Author.Email}

	doc := atom.Feed{
		Xmlns:    atom.Namespace,
		Title:    title,
		Subtitle: site.Description,
		ID:       site.BaseURL,
		Updated:  now.Format(time.RFC3339),
		Links: []atom.Link{
			{Rel: relSelf, Type: typeAtom, Href: extras.SelfURL},
			{Rel: relAlternate, Type: typeHTML, Href: site.BaseURL},
		},
		Author:    author,
		Generator: extras.Generator,
		Icon:      extras.IconURL,
		Logo:      extras.LogoURL,
	}

	doc.Entries = make([]atom.Entry, 0, len(entries))
	for _, e := range entries {
		doc.Entries = append(doc.Entries, atom.Entry{
			Title: atom.Text{Type: textHTML, Body: e.Title},
			// The permalink is the cross-session identity feed readers
			// deduplicate on; it must not change when the entry is edited.
			ID:        e.Permalink,
			Link:      atom.Link{Rel: relAlternate, Type: typeHTML, Href: e.Permalink, Title: e.Title},
			Published: e.Published.Format(time.RFC3339),
			Updated:   e.Updated.Format(time.RFC3339),
			Author:    author,
			Summary:   atom.Text{Type: textHTML, Body: Collapse(e.Summary)},
			Content:   atom.Text{Type: textHTML, Body: renderContent(site, variant, e)},
		})
	}

	return atom.Marshal(doc)
}

// Collapse squeezes runs of whitespace down to single spaces and trims both
// ends. Collapsing an already-collapsed string is a no-op.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// renderContent builds the content value for one entry under the given
// variant.
func renderContent(site config.SiteConfig, variant Variant, e model.Entry) string {
	body := Collapse(e.Body)
	switch variant {
	case CommunityRepost:
		// The attribution is escaped before being appended, so inside the
		// serialized content element it stays one escaping level below the
		// body. Syndication partners then see embedded escaped HTML rather
		// than raw tags breaking the XML.
		return body + html.EscapeString(attribution(site, e))
	default:
		return body
	}
}

// attribution builds the repost notice pointing community readers back to
// the original publication.
func attribution(site config.SiteConfig, e model.Entry) string {
	return fmt.Sprintf("<p>This article was originally published by %s at <a href=%q>%s</a> on %s.</p>",
		site.Author.Name, e.Permalink, site.Title, e.Published.UTC().Format(attributionDateLayout))
}
