package notion

import (
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreleave/shoreleave/pkg/catalog"
)

func pageWith(props notionapi.Properties) notionapi.Page {
	return notionapi.Page{ID: "page-1", Properties: props}
}

func TestPlainTextJoinsSegments(t *testing.T) {
	got := plainText([]notionapi.RichText{
		{PlainText: "Snorkel "},
		{PlainText: "Tour"},
	})
	assert.Equal(t, "Snorkel Tour", got)
	assert.Empty(t, plainText(nil))
}

func TestTitleOfFindsTitlePropertyByKind(t *testing.T) {
	// The title property is found by kind, not by name, since databases
	// name it freely.
	page := pageWith(notionapi.Properties{
		"Full Name": &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: "Reef Trip"}}},
		"Notes":     &notionapi.RichTextProperty{RichText: []notionapi.RichText{{PlainText: "ignored"}}},
	})
	assert.Equal(t, "Reef Trip", titleOf(page))

	assert.Empty(t, titleOf(pageWith(notionapi.Properties{})))
}

func TestEntryFromPage(t *testing.T) {
	page := pageWith(notionapi.Properties{
		propName:        &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: "Lava Tube Hike"}}},
		propCategory:    &notionapi.SelectProperty{Select: notionapi.Option{Name: "Hiking"}},
		propSummary:     &notionapi.RichTextProperty{RichText: []notionapi.RichText{{PlainText: "Short hike."}}},
		propDescription: &notionapi.RichTextProperty{RichText: []notionapi.RichText{{PlainText: "A walk through a lava tube."}}},
		propInsights:    &notionapi.RichTextProperty{RichText: []notionapi.RichText{{PlainText: "Bring a jacket."}}},
		propLabels: &notionapi.MultiSelectProperty{MultiSelect: []notionapi.Option{
			{Name: "hiking"}, {Name: "geology"},
		}},
		propLink: &notionapi.URLProperty{URL: "https://example.com/lava"},
	})

	got := entryFromPage(page)
	assert.Equal(t, catalog.Entry{
		ID:          "page-1",
		Name:        "Lava Tube Hike",
		Category:    "Hiking",
		Summary:     "Short hike.",
		Description: "A walk through a lava tube.",
		Insights:    "Bring a jacket.",
		Labels:      []string{"hiking", "geology"},
		Link:        "https://example.com/lava",
	}, got)
}

func TestEntryFromPageWithMissingProperties(t *testing.T) {
	got := entryFromPage(pageWith(notionapi.Properties{
		propName: &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: "Bare Entry"}}},
	}))

	assert.Equal(t, "Bare Entry", got.Name)
	assert.Empty(t, got.Category)
	assert.Empty(t, got.Summary)
	assert.Empty(t, got.Labels)
	assert.Empty(t, got.Link)
}

func TestCandidatePropertiesIncludesTitleOnlyOnCreate(t *testing.T) {
	c := catalog.Candidate{
		Name:        "Catamaran Sail",
		Category:    "Water",
		Summary:     "Half-day sail.",
		Description: "Sail with lunch.",
		Insights:    "Mornings are calmer.",
		Labels:      []string{"water"},
		Link:        "https://example.com/sail",
	}

	create := candidateProperties(c, true)
	title, ok := create[propName].(notionapi.TitleProperty)
	require.True(t, ok)
	assert.Equal(t, "Catamaran Sail", title.Title[0].Text.Content)

	update := candidateProperties(c, false)
	_, ok = update[propName]
	assert.False(t, ok, "updates must never rewrite the entry name")

	sel, ok := update[propCategory].(notionapi.SelectProperty)
	require.True(t, ok)
	assert.Equal(t, "Water", sel.Select.Name)
}

func TestCandidatePropertiesEmptyLink(t *testing.T) {
	// Creating a linkless candidate leaves the property off the page.
	create := candidateProperties(catalog.Candidate{Name: "X"}, true)
	_, ok := create[propLink]
	assert.False(t, ok)

	// Updating overwrites all descriptive fields, so an empty link must be
	// written through to clear the entry's prior link.
	update := candidateProperties(catalog.Candidate{Name: "X"}, false)
	link, ok := update[propLink].(notionapi.URLProperty)
	require.True(t, ok, "update payload must carry the link even when empty")
	assert.Empty(t, link.URL)
}

func TestCandidatePropertiesKeepsNonEmptyLinkOnUpdate(t *testing.T) {
	update := candidateProperties(catalog.Candidate{Name: "X", Link: "https://example.com/x"}, false)
	link, ok := update[propLink].(notionapi.URLProperty)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/x", link.URL)
}

func TestEnrichmentProperties(t *testing.T) {
	props := enrichmentProperties("sum", "rec", "ins")

	summary, ok := props[propAISummary].(notionapi.RichTextProperty)
	require.True(t, ok)
	assert.Equal(t, "sum", summary.RichText[0].Text.Content)

	_, ok = props[propAIRecommend]
	assert.True(t, ok)
	_, ok = props[propAIInsights]
	assert.True(t, ok)
}
