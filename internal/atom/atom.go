package atom

import "encoding/xml"

// Namespace is the Atom 1.0 XML namespace (RFC 4287).
const Namespace = "http://www.w3.org/2005/Atom"

// Feed represents an Atom feed document.
type Feed struct {
	XMLName   xml.Name `xml:"feed"`
	Xmlns     string   `xml:"xmlns,attr"`
	Title     string   `xml:"title"`
	Subtitle  string   `xml:"subtitle,omitempty"`
	ID        string   `xml:"id"`
	Updated   string   `xml:"updated"`
	Links     []Link   `xml:"link"`
	Author    Person   `xml:"author"`
	Generator string   `xml:"generator,omitempty"`
	Icon      string   `xml:"icon,omitempty"`
	Logo      string   `xml:"logo,omitempty"`
	Entries   []Entry  `xml:"entry"`
}

// Entry is an item within a Feed.
type Entry struct {
	Title     Text   `xml:"title"`
	ID        string `xml:"id"`
	Link      Link   `xml:"link"`
	Published string `xml:"published"`
	Updated   string `xml:"updated"`
	Author    Person `xml:"author"`
	Summary   Text   `xml:"summary"`
	Content   Text   `xml:"content"`
}

// Text is a typed text construct such as a title, summary, or content body.
type Text struct {
	Type string `xml:"type,attr,omitempty"`
	Body string `xml:",chardata"`
}

// Person represents an author of a Feed or Entry.
type Person struct {
	Name  string `xml:"name"`
	Email string `xml:"email,omitempty"`
}

// Link represents a hyperlink associated with a Feed or Entry.
type Link struct {
	Rel   string `xml:"rel,attr,omitempty"`
	Type  string `xml:"type,attr,omitempty"`
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr,omitempty"`
}

// Marshal renders the feed as a standalone UTF-8 XML document.
func Marshal(f Feed) (string, error) {
	b, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(b) + "\n", nil
}
