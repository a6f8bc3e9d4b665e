// Package discover generates candidate catalog entries for a destination by
// running a web-grounded model query and decoding its structured reply.
// Discovery only produces candidates; deciding what happens to them is the
// reconciler's job.
package discover

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// DefaultCount is how many candidates a discovery run asks for by default.
const DefaultCount = 10

const discoverSystemPrompt = "You are a travel researcher compiling shore excursion options for cruise " +
	"passengers. Use current web information and respond with strict JSON only."

// Completer is the web-grounded generative capability discovery runs on.
type Completer interface {
	CompleteGrounded(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error)
}

// Discoverer turns a destination into a batch of candidate entries.
type Discoverer struct {
	llm    Completer
	logger *zerolog.Logger
	caser  cases.Caser
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithLogger overrides the logger used during discovery. Without it the
// discoverer logs through the context logger (logging.Ctx).
func WithLogger(logger *zerolog.Logger) Option {
	return func(d *Discoverer) {
		d.logger = logger
	}
}

// New creates a Discoverer over the given completer.
func New(llm Completer, opts ...Option) *Discoverer {
	d := &Discoverer{
		llm:   llm,
		caser: cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Candidates asks the model for count excursion candidates at the given
// destination and decodes them. Field validation and placeholder filling
// are left to the reconciler's normalization step.
func (d *Discoverer) Candidates(ctx context.Context, destination string, count int) ([]catalog.Candidate, error) {
	if count <= 0 {
		count = DefaultCount
	}

	// Destinations are typed at the CLI and often arrive lowercase.
	if destination == strings.ToLower(destination) {
		destination = d.caser.String(destination)
	}

	raw, err := d.llm.CompleteGrounded(ctx, discoverSystemPrompt, discoverPrompt(destination, count), 8192, 0.7)
	if err != nil {
		return nil, err
	}

	payload := extractJSONArray(raw)
	if payload == "" {
		return nil, fmt.Errorf("no JSON array in model reply: %w", errors.ErrNoCandidates)
	}

	var wire []candidateWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, errors.NewValidationError("candidates", payload, fmt.Sprintf("decoding model JSON: %v", err))
	}
	if len(wire) == 0 {
		return nil, errors.ErrNoCandidates
	}

	candidates := make([]catalog.Candidate, 0, len(wire))
	for _, w := range wire {
		candidates = append(candidates, w.candidate())
	}

	logger := d.logger
	if logger == nil {
		logger = logging.Ctx(ctx)
	}
	logger.Info().
		Str("destination", destination).
		Int("candidates", len(candidates)).
		Msg("Discovery produced candidates")

	return candidates, nil
}

// discoverPrompt renders the structured-output request for one destination.
func discoverPrompt(destination string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research the %d best shore excursions for cruise passengers visiting %s.\n\n", count, destination)
	b.WriteString("Respond with a JSON array only, no prose. Each element must have these fields:\n")
	b.WriteString(`  "name": short excursion name` + "\n")
	b.WriteString(`  "category": one of Water, Hiking, Culture, Wildlife, Food, Adventure, Relaxation` + "\n")
	b.WriteString(`  "summary": 2-3 sentence overview` + "\n")
	b.WriteString(`  "description": detailed description of the experience` + "\n")
	b.WriteString(`  "insights": practical tips for a family visiting for the first time` + "\n")
	b.WriteString(`  "labels": array of short lowercase tags` + "\n")
	b.WriteString(`  "link": official booking or information URL, or omit if unknown` + "\n")
	return b.String()
}

// candidateWire is the tolerant JSON shape of one discovered candidate.
type candidateWire struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	Insights    string       `json:"insights"`
	Labels      flexibleList `json:"labels"`
	Link        string       `json:"link"`
}

func (w candidateWire) candidate() catalog.Candidate {
	return catalog.Candidate{
		Name:        w.Name,
		Category:    w.Category,
		Summary:     w.Summary,
		Description: w.Description,
		Insights:    w.Insights,
		Labels:      w.Labels,
		Link:        w.Link,
	}
}

// flexibleList decodes either a JSON string array or a single string.
// Models regularly emit "family, water" where an array was asked for; the
// comma splitting itself is normalization's job.
type flexibleList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *flexibleList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("labels must be a string or an array of strings")
	}

	if single == "" {
		*l = nil
		return nil
	}
	*l = flexibleList{single}
	return nil
}
