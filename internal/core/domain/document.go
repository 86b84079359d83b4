package domain

import (
	"encoding/json"
	"strings"
)

// Heading is one section heading within a document body.
type Heading struct {
	// Text is the heading text without markup.
	Text string `json:"text"`

	// Level is the heading depth (1 for H1, 2 for H2, ...).
	Level int `json:"level"`
}

// StringList is a list of strings that tolerates scalar input.
// When unmarshalled from a single string, the value is split on commas
// if any comma is present, otherwise on whitespace. Pieces are trimmed
// and empty pieces dropped.
type StringList []string

// UnmarshalJSON accepts either a JSON array of strings or a single
// delimiter-separated string.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = SplitListString(single)
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	out := make(StringList, 0, len(many))
	for _, v := range many {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	*l = out
	return nil
}

// SplitListString splits a delimiter-separated value into its pieces.
// Comma is the delimiter when present, whitespace otherwise.
func SplitListString(s string) []string {
	var parts []string
	if strings.Contains(s, ",") {
		parts = strings.Split(s, ",")
	} else {
		parts = strings.Fields(s)
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DocumentRecord is one indexable documentation page.
// All fields except ID are optional; a missing field contributes nothing
// to search or filtering. The ID is unique across the corpus and is used
// as both index key and result key.
type DocumentRecord struct {
	// ID is the unique identifier, typically a path such as "guides/streaming".
	ID string `json:"id"`

	// Title is the human-readable page title.
	Title string `json:"title"`

	// Description is the hand-written page summary.
	Description string `json:"description"`

	// Body is the raw text content of the page.
	Body string `json:"body"`

	// Headings are the section headings in document order.
	Headings []Heading `json:"headings,omitempty"`

	// Keywords are curated search keywords.
	Keywords StringList `json:"keywords,omitempty"`

	// Tags are free-form labels. Source data may supply them as a list
	// or as a single comma- or whitespace-separated string.
	Tags StringList `json:"tags,omitempty"`

	// Topics are the topic/category labels. Source data may use the
	// legacy field name "categories".
	Topics StringList `json:"topics,omitempty"`

	// Audience are the audience/persona labels. Source data may use the
	// legacy field name "personas".
	Audience StringList `json:"audience,omitempty"`

	// ContentType classifies the page (guide, reference, tutorial, ...).
	ContentType string `json:"content_type,omitempty"`

	// Difficulty is the stated difficulty level.
	Difficulty string `json:"difficulty,omitempty"`

	// Facets holds user-defined filter dimensions keyed by facet name.
	Facets map[string]StringList `json:"facets,omitempty"`

	// Modality is a legacy flat field treated as an implicit facet.
	Modality string `json:"modality,omitempty"`

	// Section is the legacy flat section path (e.g. "guides/advanced").
	Section string `json:"section,omitempty"`

	// Author is a legacy flat field treated as an implicit facet.
	Author string `json:"author,omitempty"`
}

// documentRecordJSON mirrors DocumentRecord with the legacy field names
// accepted by the corpus schema. New names win over legacy names.
type documentRecordJSON struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Summary     string                `json:"summary"`
	Body        string                `json:"body"`
	Content     string                `json:"content"`
	Headings    []Heading             `json:"headings"`
	Keywords    StringList            `json:"keywords"`
	Tags        StringList            `json:"tags"`
	Topics      StringList            `json:"topics"`
	Categories  StringList            `json:"categories"`
	Audience    StringList            `json:"audience"`
	Personas    StringList            `json:"personas"`
	ContentType string                `json:"content_type"`
	Difficulty  string                `json:"difficulty"`
	Facets      map[string]StringList `json:"facets"`
	Modality    string                `json:"modality"`
	Section     string                `json:"section"`
	Author      string                `json:"author"`
}

// UnmarshalJSON resolves the dual field names of the corpus schema
// (topics vs categories, audience vs personas, body vs content,
// description vs summary) into the single normalised form. The ambiguity
// stops here; nothing downstream branches on source naming.
func (d *DocumentRecord) UnmarshalJSON(data []byte) error {
	var raw documentRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.ID = raw.ID
	d.Title = raw.Title
	d.Description = raw.Description
	if d.Description == "" {
		d.Description = raw.Summary
	}
	d.Body = raw.Body
	if d.Body == "" {
		d.Body = raw.Content
	}
	d.Headings = raw.Headings
	d.Keywords = raw.Keywords
	d.Tags = raw.Tags
	d.Topics = raw.Topics
	if len(d.Topics) == 0 {
		d.Topics = raw.Categories
	}
	d.Audience = raw.Audience
	if len(d.Audience) == 0 {
		d.Audience = raw.Personas
	}
	d.ContentType = raw.ContentType
	d.Difficulty = raw.Difficulty
	d.Facets = raw.Facets
	d.Modality = raw.Modality
	d.Section = raw.Section
	d.Author = raw.Author
	return nil
}

// TagList returns the normalised tag values. Elements that still contain
// delimiters (records built in code rather than unmarshalled) are split
// with the same comma-else-whitespace rule.
func (d DocumentRecord) TagList() []string {
	return expandList(d.Tags)
}

// TopicList returns the topic values. When no explicit topic field exists
// it falls back to the section-path segments, then to the identifier path
// segments, so every document lands in at least one topic bucket when it
// carries a structured path.
func (d DocumentRecord) TopicList() []string {
	if len(d.Topics) > 0 {
		return expandList(d.Topics)
	}
	if segs := pathSegments(d.Section); len(segs) > 0 {
		return segs
	}
	segs := pathSegments(d.ID)
	if len(segs) > 1 {
		// The final segment is the page name, not a topic.
		return segs[:len(segs)-1]
	}
	return nil
}

// AudienceList returns the audience/persona values.
func (d DocumentRecord) AudienceList() []string {
	return expandList(d.Audience)
}

// KeywordList returns the keyword values.
func (d DocumentRecord) KeywordList() []string {
	return expandList(d.Keywords)
}

// FacetValues returns the document's values for the named facet.
// The nested facets mapping is consulted first, then the legacy flat
// field of the same name.
func (d DocumentRecord) FacetValues(key string) []string {
	if vals, ok := d.Facets[key]; ok && len(vals) > 0 {
		return expandList(vals)
	}

	switch key {
	case "modality":
		if d.Modality != "" {
			return []string{d.Modality}
		}
	case "section":
		if d.Section != "" {
			return []string{d.Section}
		}
	case "author":
		if d.Author != "" {
			return []string{d.Author}
		}
	}
	return nil
}

// expandList re-splits list elements that still carry delimiters.
func expandList(l StringList) []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, v := range l {
		out = append(out, SplitListString(v)...)
	}
	return out
}

// pathSegments splits a slash-separated path into non-empty segments.
func pathSegments(path string) []string {
	if path == "" {
		return nil
	}
	var segs []string
	for _, s := range strings.Split(path, "/") {
		s = strings.TrimSpace(s)
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
