// Package catalog defines the domain types shared across the shoreleave
// system: excursions read from the planning workspace, candidate entries
// produced by discovery, entries already present in the destination catalog,
// and the travel-party personas used for insight generation.
package catalog

import "strings"

// Candidate is a transient record describing one discovered excursion
// proposed for insertion or merge into the destination catalog. Candidates
// are produced fresh for each discovery run and are not retained afterward.
type Candidate struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Insights    string   `json:"insights"`
	Labels      []string `json:"labels"`
	Link        string   `json:"link,omitempty"` // empty means no link
}

// Entry is a record already present in the destination catalog, addressed by
// the opaque page id issued by the remote store. The store owns entries
// entirely; shoreleave only reads and conditionally patches them.
type Entry struct {
	ID          string
	Name        string
	Category    string
	Summary     string
	Description string
	Insights    string
	Labels      []string
	Link        string
}

// Excursion is a page from the excursion planning database: the unit of
// enrichment. Location is resolved from the page's relation property.
type Excursion struct {
	ID          string
	Name        string
	Description string
	Location    string
}

// Persona describes one member of the travel party, read from the people
// database. Interests and notes feed the insight prompts.
type Persona struct {
	Name      string
	Interests []string
	Notes     string
}

// Describe renders the persona as a single prompt-friendly line.
func (p Persona) Describe() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if len(p.Interests) > 0 {
		b.WriteString(" (interests: ")
		b.WriteString(strings.Join(p.Interests, ", "))
		b.WriteString(")")
	}
	if p.Notes != "" {
		b.WriteString(" - ")
		b.WriteString(p.Notes)
	}
	return b.String()
}
