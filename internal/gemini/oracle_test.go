package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/reconcile"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want reconcile.Match
	}{
		{"bare number", "3", reconcile.MatchAt(2)},
		{"number with whitespace", "  2\n", reconcile.MatchAt(1)},
		{"number inside prose", "The answer is 2.", reconcile.MatchAt(1)},
		{"no match", "NO MATCH", reconcile.NoMatch()},
		{"no match lowercase", "no match", reconcile.NoMatch()},
		{"no match with punctuation", "NO MATCH.", reconcile.NoMatch()},
		{"zero is not a valid 1-based answer", "0", reconcile.Unparseable()},
		{"empty", "", reconcile.Unparseable()},
		{"whitespace only", "  \n ", reconcile.Unparseable()},
		{"prose without a number", "none of these look similar", reconcile.Unparseable()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseVerdict(tt.raw))
		})
	}
}

func TestOraclePromptNumbersEntriesFromOne(t *testing.T) {
	prompt := oraclePrompt("Snorkeling Excursion", []string{"Snorkel Tour", "Volcano Walk"})

	assert.Contains(t, prompt, "1. Snorkel Tour")
	assert.Contains(t, prompt, "2. Volcano Walk")
	assert.Contains(t, prompt, `"Snorkeling Excursion"`)
	assert.Contains(t, prompt, noMatchAnswer)
}

func TestOracleClassify(t *testing.T) {
	oracle := NewOracle(func(_ context.Context, _, user string, _ int32, _ float32) (string, error) {
		assert.Contains(t, user, "1. Snorkel Tour")
		return "1", nil
	})

	match, err := oracle.Classify(context.Background(), "Snorkeling Excursion", []string{"Snorkel Tour"})
	require.NoError(t, err)
	assert.Equal(t, reconcile.MatchAt(0), match)
}

func TestOracleClassifyPropagatesTransportErrors(t *testing.T) {
	cause := errors.New("model unavailable")
	oracle := NewOracle(func(_ context.Context, _, _ string, _ int32, _ float32) (string, error) {
		return "", cause
	})

	_, err := oracle.Classify(context.Background(), "Snorkel Tour", nil)
	require.Error(t, err)
	assert.True(t, errors.IsOracleError(err))
	assert.ErrorIs(t, err, cause)
}

func TestOracleClassifyReportsUnparseableOutput(t *testing.T) {
	oracle := NewOracle(func(_ context.Context, _, _ string, _ int32, _ float32) (string, error) {
		return "hmm, tough call", nil
	})

	match, err := oracle.Classify(context.Background(), "Snorkel Tour", []string{"Reef Trip"})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Unparseable(), match)
}
