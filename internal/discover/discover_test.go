package discover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// fakeCompleter returns a canned grounded reply.
type fakeCompleter struct {
	reply string
	err   error
	user  string
}

func (f *fakeCompleter) CompleteGrounded(_ context.Context, _, user string, _ int32, _ float32) (string, error) {
	f.user = user
	return f.reply, f.err
}

func newDiscoverer(llm Completer) *Discoverer {
	return New(llm, WithLogger(logging.NewNopLogger()))
}

func TestCandidatesDecodesFencedReply(t *testing.T) {
	llm := &fakeCompleter{reply: "Here are the excursions you asked for:\n" +
		"```json\n" +
		`[
  {
    "name": "Snorkel Tour",
    "category": "Water",
    "summary": "Reef snorkel.",
    "description": "Guided reef snorkel.",
    "insights": "Go early.",
    "labels": ["water", "family"],
    "link": "https://example.com/snorkel"
  },
  {
    "name": "Lava Tube Hike",
    "labels": "hiking, geology",
  },
]` + "\n```\nLet me know if you need more."}

	candidates, err := newDiscoverer(llm).Candidates(context.Background(), "cozumel", 2)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Snorkel Tour", candidates[0].Name)
	assert.Equal(t, []string{"water", "family"}, candidates[0].Labels)
	assert.Equal(t, "https://example.com/snorkel", candidates[0].Link)

	// Labels given as a single comma-joined string survive decoding;
	// splitting them is normalization's job.
	assert.Equal(t, []string{"hiking, geology"}, candidates[1].Labels)
	assert.Empty(t, candidates[1].Summary)

	// Lowercase destinations are title-cased into the prompt.
	assert.Contains(t, llm.user, "Cozumel")
}

func TestCandidatesWithBareArrayReply(t *testing.T) {
	llm := &fakeCompleter{reply: `[{"name": "Catamaran Sail"}]`}

	candidates, err := newDiscoverer(llm).Candidates(context.Background(), "St. Thomas", 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Catamaran Sail", candidates[0].Name)

	// Mixed-case destinations pass through untouched.
	assert.Contains(t, llm.user, "St. Thomas")
}

func TestCandidatesRejectsReplyWithoutArray(t *testing.T) {
	llm := &fakeCompleter{reply: "I could not find any excursions, sorry."}

	_, err := newDiscoverer(llm).Candidates(context.Background(), "Cozumel", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoCandidates)
}

func TestCandidatesRejectsEmptyArray(t *testing.T) {
	llm := &fakeCompleter{reply: "[]"}

	_, err := newDiscoverer(llm).Candidates(context.Background(), "Cozumel", 5)
	assert.ErrorIs(t, err, errors.ErrNoCandidates)
}

func TestCandidatesRejectsMalformedJSON(t *testing.T) {
	llm := &fakeCompleter{reply: `[{"name": }]`}

	_, err := newDiscoverer(llm).Candidates(context.Background(), "Cozumel", 5)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCandidatesPropagatesCompleterError(t *testing.T) {
	cause := errors.New("quota exceeded")
	llm := &fakeCompleter{err: cause}

	_, err := newDiscoverer(llm).Candidates(context.Background(), "Cozumel", 5)
	assert.ErrorIs(t, err, cause)
}

func TestCandidatesLogsThroughContextLogger(t *testing.T) {
	llm := &fakeCompleter{reply: `[{"name": "Catamaran Sail"}]`}
	d := New(llm) // no WithLogger

	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	_, err := d.Candidates(ctx, "Cozumel", 1)
	require.NoError(t, err)

	assert.True(t, tl.Contains("Discovery produced candidates"))
	assert.True(t, tl.Contains(`"destination":"Cozumel"`))
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare array",
			content: `[1, 2]`,
			want:    `[1, 2]`,
		},
		{
			name:    "fenced with language tag",
			content: "```json\n[1, 2]\n```",
			want:    "[1, 2]",
		},
		{
			name:    "fenced without language tag",
			content: "```\n[1]\n```",
			want:    "[1]",
		},
		{
			name:    "trailing commas removed",
			content: `[{"a": 1,},]`,
			want:    `[{"a": 1}]`,
		},
		{
			name:    "line comment stripped outside strings",
			content: "[\n\"x\", // a note\n\"y\"\n]",
			want:    "[\n\"x\",\n\"y\"\n]",
		},
		{
			name:    "url with slashes survives",
			content: `[{"link": "https://example.com/a"}]`,
			want:    `[{"link": "https://example.com/a"}]`,
		},
		{
			name:    "no array at all",
			content: "nothing here",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.content))
		})
	}
}
