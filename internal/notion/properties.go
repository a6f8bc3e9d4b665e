package notion

import (
	"strings"

	"github.com/jomei/notionapi"

	"github.com/shoreleave/shoreleave/pkg/catalog"
)

// Property names in the excursion planning database.
const (
	propName          = "Name"
	propDescription   = "Description"
	propCruiseDetails = "Cruise Details" // relation to the cruise schedule database
	propAISummary     = "MyAI Summary"
	propAIRecommend   = "MyAI Recommendation"
	propAIInsights    = "MyAI Insights"
)

// Property names in the destination catalog database.
const (
	propCategory = "Category"
	propSummary  = "Summary"
	propInsights = "Insights"
	propLabels   = "Labels"
	propLink     = "Link"
)

// Property names in the people database.
const (
	propInterests = "Interests"
	propNotes     = "Notes"
)

// plainText flattens a rich text list into its plain text content.
func plainText(richText []notionapi.RichText) string {
	if len(richText) == 0 {
		return ""
	}

	var b strings.Builder
	for _, rt := range richText {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

// richText wraps a string in a single-element rich text list for writes.
func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: s}},
	}
}

// titleOf returns the page's title text, searching all properties for the
// title kind since databases name the title property freely.
func titleOf(page notionapi.Page) string {
	for _, prop := range page.Properties {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			return plainText(tp.Title)
		}
	}
	return ""
}

// richTextOf returns the plain text of a named rich_text property.
func richTextOf(page notionapi.Page, name string) string {
	if rt, ok := page.Properties[name].(*notionapi.RichTextProperty); ok {
		return plainText(rt.RichText)
	}
	return ""
}

// selectOf returns the option name of a named select property.
func selectOf(page notionapi.Page, name string) string {
	if sp, ok := page.Properties[name].(*notionapi.SelectProperty); ok {
		return sp.Select.Name
	}
	return ""
}

// multiSelectOf returns the option names of a named multi_select property.
func multiSelectOf(page notionapi.Page, name string) []string {
	ms, ok := page.Properties[name].(*notionapi.MultiSelectProperty)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(ms.MultiSelect))
	for _, opt := range ms.MultiSelect {
		names = append(names, opt.Name)
	}
	return names
}

// urlOf returns the value of a named url property.
func urlOf(page notionapi.Page, name string) string {
	if up, ok := page.Properties[name].(*notionapi.URLProperty); ok {
		return up.URL
	}
	return ""
}

// relationIDsOf returns the related page ids of a named relation property.
func relationIDsOf(page notionapi.Page, name string) []string {
	rp, ok := page.Properties[name].(*notionapi.RelationProperty)
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(rp.Relation))
	for _, rel := range rp.Relation {
		ids = append(ids, string(rel.ID))
	}
	return ids
}

// entryFromPage maps a catalog database page onto a domain entry.
func entryFromPage(page notionapi.Page) catalog.Entry {
	return catalog.Entry{
		ID:          string(page.ID),
		Name:        titleOf(page),
		Category:    selectOf(page, propCategory),
		Summary:     richTextOf(page, propSummary),
		Description: richTextOf(page, propDescription),
		Insights:    richTextOf(page, propInsights),
		Labels:      multiSelectOf(page, propLabels),
		Link:        urlOf(page, propLink),
	}
}

// candidateProperties builds the property set for creating or updating a
// catalog entry. The title is included only when requested: updates never
// rewrite an entry's name.
func candidateProperties(c catalog.Candidate, withTitle bool) notionapi.Properties {
	labels := make([]notionapi.Option, 0, len(c.Labels))
	for _, label := range c.Labels {
		labels = append(labels, notionapi.Option{Name: label})
	}

	props := notionapi.Properties{
		propCategory:    notionapi.SelectProperty{Select: notionapi.Option{Name: c.Category}},
		propSummary:     notionapi.RichTextProperty{RichText: richText(c.Summary)},
		propDescription: notionapi.RichTextProperty{RichText: richText(c.Description)},
		propInsights:    notionapi.RichTextProperty{RichText: richText(c.Insights)},
		propLabels:      notionapi.MultiSelectProperty{MultiSelect: labels},
	}

	if withTitle {
		props[propName] = notionapi.TitleProperty{Title: richText(c.Name)}
	}

	// Creates leave an absent link off the page. Updates overwrite every
	// descriptive field, so a linkless candidate writes an empty url to
	// clear whatever the entry held before.
	if c.Link != "" || !withTitle {
		props[propLink] = notionapi.URLProperty{URL: c.Link}
	}

	return props
}

// enrichmentProperties builds the property set written back by enrichment.
func enrichmentProperties(summary, recommendation, insights string) notionapi.Properties {
	return notionapi.Properties{
		propAISummary:   notionapi.RichTextProperty{RichText: richText(summary)},
		propAIRecommend: notionapi.RichTextProperty{RichText: richText(recommendation)},
		propAIInsights:  notionapi.RichTextProperty{RichText: richText(insights)},
	}
}
