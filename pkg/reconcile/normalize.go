package reconcile

import (
	"strings"

	"github.com/shoreleave/shoreleave/pkg/catalog"
)

// Normalize fills a candidate's missing required fields with deterministic
// placeholders and coerces a comma-joined labels string into a set of tags.
// Malformed model output must still produce a usable record, so candidates
// are repaired rather than rejected.
func Normalize(c catalog.Candidate) catalog.Candidate {
	c.Name = orPlaceholder(c.Name, "name")
	c.Category = orPlaceholder(c.Category, "category")
	c.Summary = orPlaceholder(c.Summary, "summary")
	c.Description = orPlaceholder(c.Description, "description")
	c.Insights = orPlaceholder(c.Insights, "insights")
	c.Labels = normalizeLabels(c.Labels)
	c.Link = strings.TrimSpace(c.Link)
	return c
}

// orPlaceholder returns the trimmed value, or the literal placeholder
// "No <field> provided" when the value is absent.
func orPlaceholder(value, field string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "No " + field + " provided"
	}
	return value
}

// normalizeLabels trims every tag and drops empties. A single comma-joined
// element is split into individual tags first, since models frequently emit
// "family, water, adventure" where a list was asked for.
func normalizeLabels(labels []string) []string {
	if len(labels) == 1 && strings.Contains(labels[0], ",") {
		labels = strings.Split(labels[0], ",")
	}

	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}
