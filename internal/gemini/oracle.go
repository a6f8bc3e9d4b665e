package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/reconcile"
)

const oracleSystemPrompt = "You are a data deduplication assistant for a travel excursion catalog. " +
	"You decide whether a new entry refers to the same excursion as one already in the catalog."

// noMatchAnswer is what the model is told to answer when nothing matches.
const noMatchAnswer = "NO MATCH"

var numberPattern = regexp.MustCompile(`\d+`)

// Oracle implements reconcile.Oracle by asking the model to pick the
// existing entry a candidate name refers to, if any. The model sees a
// 1-based numbered list; the returned Match carries a 0-based index.
type Oracle struct {
	complete CompleteFunc
}

// CompleteFunc is the completion capability the oracle runs on.
type CompleteFunc func(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error)

// Oracle returns a similarity oracle backed by this client.
func (c *Client) Oracle() *Oracle {
	return &Oracle{complete: c.Complete}
}

// NewOracle creates an oracle over an arbitrary completion function.
func NewOracle(complete CompleteFunc) *Oracle {
	return &Oracle{complete: complete}
}

// Classify asks the model whether the candidate name refers to one of the
// existing entries. Transport failures are returned as errors; output the
// model produced but that cannot be decoded yields an Unparseable match.
func (o *Oracle) Classify(ctx context.Context, name string, existing []string) (reconcile.Match, error) {
	raw, err := o.complete(ctx, oracleSystemPrompt, oraclePrompt(name, existing), 16, 0)
	if err != nil {
		return reconcile.Match{}, errors.NewOracleError(name, "", err)
	}
	return parseVerdict(raw), nil
}

// oraclePrompt renders the numbered list of existing names and the
// candidate, asking for a bare number or the no-match answer.
func oraclePrompt(name string, existing []string) string {
	var b strings.Builder
	b.WriteString("Existing catalog entries:\n")
	for i, existingName := range existing {
		fmt.Fprintf(&b, "%d. %s\n", i+1, existingName)
	}
	fmt.Fprintf(&b, "\nNew entry: %q\n\n", name)
	fmt.Fprintf(&b, "If the new entry refers to the same excursion as one of the existing entries, "+
		"respond with only that entry's number. Otherwise respond with exactly %q.", noMatchAnswer)
	return b.String()
}

// parseVerdict decodes the model's free-text answer into a typed match.
// The number on the wire is 1-based; anything that is neither a positive
// number nor the no-match answer is reported as unparseable.
func parseVerdict(raw string) reconcile.Match {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return reconcile.Unparseable()
	}

	if strings.Contains(strings.ToUpper(answer), noMatchAnswer) {
		return reconcile.NoMatch()
	}

	digits := numberPattern.FindString(answer)
	if digits == "" {
		return reconcile.Unparseable()
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return reconcile.Unparseable()
	}

	return reconcile.MatchAt(n - 1)
}
