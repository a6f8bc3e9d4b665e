// Package enrich generates AI content for excursion pages: a short summary
// per page, a comparative recommendation against the other excursions at the
// same location, and travel-party insights. Generated text is written back
// onto the page's AI properties.
package enrich

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// Canned texts written when generation is impossible or fails. Enrichment is
// best-effort per page; a model failure never aborts the run.
const (
	noDescriptionSummary = "No description available to summarize."
	summaryErrorText     = "Error generating summary."
	noRecommendation     = "No recommendation available."
	noInsights           = "No insights available."
)

const (
	summarySystemPrompt = "You are a helpful travel assistant providing concise summaries of vacation excursions."

	recommendSystemPrompt = "You are a helpful travel advisor providing comparative recommendations for vacation excursions."

	insightsSystemPrompt = "You are a thoughtful travel advisor who tailors advice to the specific people taking the trip."
)

// contextDescriptionLimit caps how much of each description is quoted in the
// comparative recommendation context.
const contextDescriptionLimit = 300

// Workspace is the excursion-planning side of the document store.
type Workspace interface {
	ListExcursions(ctx context.Context) ([]catalog.Excursion, error)
	GetExcursion(ctx context.Context, pageID string) (catalog.Excursion, error)
	ListPersonas(ctx context.Context) ([]catalog.Persona, error)
	UpdateEnrichment(ctx context.Context, pageID, summary, recommendation, insights string) error
}

// Completer is the generative text capability enrichment runs on.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error)
}

// Report summarizes one enrichment run.
type Report struct {
	// Updated is how many pages were written back successfully.
	Updated int
	// Failed is how many pages could not be written back.
	Failed int
	// Skipped is how many pages had no description and were left alone.
	Skipped int
	// Total is how many pages had content generated for them.
	Total int
}

// Enricher drives the enrichment pipeline.
type Enricher struct {
	store  Workspace
	llm    Completer
	logger *zerolog.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithLogger overrides the logger used during enrichment. Without it the
// enricher logs through the context logger (logging.Ctx).
func WithLogger(logger *zerolog.Logger) Option {
	return func(e *Enricher) {
		e.logger = logger
	}
}

// New creates an Enricher over the given workspace and completer.
func New(store Workspace, llm Completer, opts ...Option) *Enricher {
	e := &Enricher{
		store: store,
		llm:   llm,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Enricher) log(ctx context.Context) *zerolog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return logging.Ctx(ctx)
}

// Run enriches every excursion page, or just one when pageID is non-empty.
// Pages without a description are skipped with a warning. Recommendations
// are comparative, so they are generated per location group before the
// per-page pass.
func (e *Enricher) Run(ctx context.Context, pageID string) (Report, error) {
	excursions, err := e.snapshot(ctx, pageID)
	if err != nil {
		return Report{}, err
	}

	var report Report
	described := make([]catalog.Excursion, 0, len(excursions))
	for _, exc := range excursions {
		if strings.TrimSpace(exc.Description) == "" {
			e.log(ctx).Warn().
				Str("page_id", exc.ID).
				Str("name", exc.Name).
				Msg("Skipping page with no description")
			report.Skipped++
			continue
		}
		described = append(described, exc)
	}
	report.Total = len(described)
	if report.Total == 0 {
		return report, nil
	}

	personas, err := e.store.ListPersonas(ctx)
	if err != nil {
		e.log(ctx).Warn().Err(err).Msg("Failed to load travel party; insights will be generic")
		personas = nil
	}

	recommendations := e.recommendations(ctx, groupByLocation(described))

	for _, exc := range described {
		summary := e.summary(ctx, exc)

		recommendation, ok := recommendations[exc.ID]
		if !ok {
			recommendation = noRecommendation
		}

		insights := e.insights(ctx, exc, personas)

		if err := e.store.UpdateEnrichment(ctx, exc.ID, summary, recommendation, insights); err != nil {
			e.log(ctx).Error().Err(err).
				Str("page_id", exc.ID).
				Str("name", exc.Name).
				Msg("Failed to update page")
			report.Failed++
			continue
		}

		e.log(ctx).Info().
			Str("page_id", exc.ID).
			Str("name", exc.Name).
			Msg("Updated page")
		report.Updated++
	}

	return report, nil
}

func (e *Enricher) snapshot(ctx context.Context, pageID string) ([]catalog.Excursion, error) {
	if pageID != "" {
		exc, err := e.store.GetExcursion(ctx, pageID)
		if err != nil {
			return nil, err
		}
		return []catalog.Excursion{exc}, nil
	}
	return e.store.ListExcursions(ctx)
}

// summary generates the 3-sentence page summary. Failures degrade to canned
// text so the page still gets its other fields.
func (e *Enricher) summary(ctx context.Context, exc catalog.Excursion) string {
	text, err := e.llm.Complete(ctx, summarySystemPrompt, summaryPrompt(exc.Description), 150, 0.7)
	if err != nil {
		e.log(ctx).Error().Err(err).Str("name", exc.Name).Msg("Failed to generate summary")
		return summaryErrorText
	}
	return strings.TrimSpace(text)
}

// recommendations generates comparative recommendations per location group,
// keyed by page id. A location with a single excursion gets canned text
// without a model call; a generation failure falls back to canned text for
// every excursion at that location.
func (e *Enricher) recommendations(ctx context.Context, byLocation map[string][]catalog.Excursion) map[string]string {
	recommendations := make(map[string]string)

	locations := make([]string, 0, len(byLocation))
	for location := range byLocation {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	for _, location := range locations {
		group := byLocation[location]
		if len(group) <= 1 {
			for _, exc := range group {
				recommendations[exc.ID] = fmt.Sprintf("This is the only excursion option for %s.", location)
			}
			continue
		}

		context := locationContext(location, group)
		for _, exc := range group {
			text, err := e.llm.Complete(ctx, recommendSystemPrompt, recommendPrompt(location, exc.Name, context), 150, 0.7)
			if err != nil {
				e.log(ctx).Error().Err(err).
					Str("location", location).
					Msg("Failed to generate recommendations")
				fallback := fmt.Sprintf("Consider comparing with other options at %s.", location)
				for _, member := range group {
					if _, done := recommendations[member.ID]; !done {
						recommendations[member.ID] = fallback
					}
				}
				break
			}
			recommendations[exc.ID] = strings.TrimSpace(text)
		}
	}

	return recommendations
}

// insights generates travel-party insights for one excursion. Without
// personas the prompt asks for generic first-visit advice.
func (e *Enricher) insights(ctx context.Context, exc catalog.Excursion, personas []catalog.Persona) string {
	text, err := e.llm.Complete(ctx, insightsSystemPrompt, insightsPrompt(exc, personas), 200, 0.7)
	if err != nil {
		e.log(ctx).Error().Err(err).Str("name", exc.Name).Msg("Failed to generate insights")
		return noInsights
	}
	return strings.TrimSpace(text)
}

func summaryPrompt(description string) string {
	return "Create a 3-sentence summary of this vacation excursion that highlights its key value " +
		"and appeal. Make it engaging and informative for a family planning their vacation. " +
		"Here's the excursion description:\n\n" + description
}

// locationContext renders the numbered list of co-located excursions shared
// by every recommendation prompt for that location.
func locationContext(location string, group []catalog.Excursion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Excursions at %s:\n\n", location)
	for i, exc := range group {
		fmt.Fprintf(&b, "%d. %s: %s\n\n", i+1, exc.Name, truncate(exc.Description, contextDescriptionLimit))
	}
	return b.String()
}

func recommendPrompt(location, name, context string) string {
	return fmt.Sprintf("Given the following excursion options at %s, provide a brief recommendation "+
		"(2-3 sentences) for the excursion %q that compares it to the other options and highlights "+
		"when this option might be the best choice for a family vacation.\n\n%s\nRecommendation for %q:",
		location, name, context, name)
}

func insightsPrompt(exc catalog.Excursion, personas []catalog.Persona) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Excursion: %s\n", exc.Name)
	if exc.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", exc.Location)
	}
	fmt.Fprintf(&b, "Description: %s\n\n", truncate(exc.Description, contextDescriptionLimit))

	if len(personas) == 0 {
		b.WriteString("Provide 2-3 sentences of practical insights for a family visiting for the first time.")
		return b.String()
	}

	b.WriteString("Travel party:\n")
	for _, p := range personas {
		fmt.Fprintf(&b, "- %s\n", p.Describe())
	}
	b.WriteString("\nProvide 2-3 sentences of insights about this excursion tailored to this travel party, " +
		"mentioning members by name where their interests are relevant.")
	return b.String()
}

func groupByLocation(excursions []catalog.Excursion) map[string][]catalog.Excursion {
	byLocation := make(map[string][]catalog.Excursion)
	for _, exc := range excursions {
		byLocation[exc.Location] = append(byLocation[exc.Location], exc)
	}
	return byLocation
}

// truncate caps s at limit bytes without splitting a multi-byte rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
