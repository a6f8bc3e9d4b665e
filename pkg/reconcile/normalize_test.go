package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/reconcile"
)

func TestNormalizeFillsPlaceholders(t *testing.T) {
	got := reconcile.Normalize(catalog.Candidate{})

	assert.Equal(t, "No name provided", got.Name)
	assert.Equal(t, "No category provided", got.Category)
	assert.Equal(t, "No summary provided", got.Summary)
	assert.Equal(t, "No description provided", got.Description)
	assert.Equal(t, "No insights provided", got.Insights)
	assert.Empty(t, got.Labels)
	assert.Empty(t, got.Link)
}

func TestNormalizeKeepsProvidedFields(t *testing.T) {
	in := catalog.Candidate{
		Name:        "Catamaran Sail",
		Category:    "Water",
		Summary:     "Half-day sail.",
		Description: "Catamaran sail with lunch.",
		Insights:    "Calm seas in the morning.",
		Labels:      []string{"water", "relaxing"},
		Link:        "https://example.com/sail",
	}

	assert.Equal(t, in, reconcile.Normalize(in))
}

func TestNormalizeTreatsWhitespaceAsMissing(t *testing.T) {
	got := reconcile.Normalize(catalog.Candidate{Name: "X", Insights: "   \n\t"})
	assert.Equal(t, "No insights provided", got.Insights)
}

func TestNormalizeLabels(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "comma-joined string is split and trimmed",
			in:   []string{"family, water ,adventure"},
			want: []string{"family", "water", "adventure"},
		},
		{
			name: "proper list passes through trimmed",
			in:   []string{" family", "water "},
			want: []string{"family", "water"},
		},
		{
			name: "empty elements dropped",
			in:   []string{"family,,water,"},
			want: []string{"family", "water"},
		},
		{
			name: "nil stays empty",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.Normalize(catalog.Candidate{Name: "X", Labels: tt.in})
			assert.Equal(t, tt.want, got.Labels)
		})
	}
}
