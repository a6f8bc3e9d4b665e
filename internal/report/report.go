// Package report renders discovery reconciliation runs as YAML files, one
// file per run, for keeping a record of what a run skipped, updated, and
// created.
package report

import (
	"os"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	"github.com/shoreleave/shoreleave/pkg/reconcile"
)

// Entry is one candidate's outcome in the report.
type Entry struct {
	Name    string   `yaml:"name"`
	Action  string   `yaml:"action"`
	EntryID string   `yaml:"entry_id,omitempty"`
	Error   string   `yaml:"error,omitempty"`
	At      utc.Time `yaml:"at"`
}

// Totals aggregates the run's outcomes by action.
type Totals struct {
	Skipped int `yaml:"skipped"`
	Updated int `yaml:"updated"`
	Created int `yaml:"created"`
	Failed  int `yaml:"failed"`
	Total   int `yaml:"total"`
}

// Run is the serialized record of one discovery reconciliation run.
type Run struct {
	Destination string   `yaml:"destination"`
	Model       string   `yaml:"model,omitempty"`
	GeneratedAt utc.Time `yaml:"generated_at"`
	Totals      Totals   `yaml:"totals"`
	Outcomes    []Entry  `yaml:"outcomes"`
}

// NewRun builds a report from reconciliation outcomes.
func NewRun(destination, model string, outcomes []reconcile.Outcome) Run {
	summary := reconcile.Summarize(outcomes)

	entries := make([]Entry, 0, len(outcomes))
	for _, outcome := range outcomes {
		entry := Entry{
			Name:    outcome.Name,
			Action:  string(outcome.Action),
			EntryID: outcome.EntryID,
			At:      outcome.At,
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		entries = append(entries, entry)
	}

	return Run{
		Destination: destination,
		Model:       model,
		GeneratedAt: utc.Now(),
		Totals: Totals{
			Skipped: summary.Skipped,
			Updated: summary.Updated,
			Created: summary.Created,
			Failed:  summary.Failed,
			Total:   summary.Total(),
		},
		Outcomes: entries,
	}
}

// Render serializes the run to YAML.
func (r Run) Render() ([]byte, error) {
	return yaml.Marshal(r)
}

// Write renders the run and writes it to path.
func (r Run) Write(path string) error {
	data, err := r.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
