package reconcile

import (
	"github.com/agentstation/utc"
)

// Action is the decision taken for one candidate.
type Action string

const (
	// ActionSkipped means an entry with the exact same name already existed.
	ActionSkipped Action = "skipped"

	// ActionUpdated means the candidate's fields were merged onto an
	// existing entry judged similar by the oracle.
	ActionUpdated Action = "updated"

	// ActionCreated means a new entry was allocated for the candidate.
	ActionCreated Action = "created"

	// ActionFailed means the store rejected the create or update; the
	// candidate was neither stored nor merged.
	ActionFailed Action = "failed"
)

// Outcome records what the reconciler did with one candidate.
type Outcome struct {
	// Name is the (normalized) candidate name.
	Name string

	// Action is the decision taken.
	Action Action

	// EntryID is the id of the entry skipped against, updated, or created.
	// Empty for failed outcomes.
	EntryID string

	// Err holds the per-candidate failure when Action is ActionFailed.
	Err error

	// At is when the decision was made.
	At utc.Time
}

// Failed reports whether the outcome records a per-candidate failure.
func (o Outcome) Failed() bool {
	return o.Action == ActionFailed
}

func skipped(name, id string) Outcome {
	return Outcome{Name: name, Action: ActionSkipped, EntryID: id, At: utc.Now()}
}

func updated(name, id string) Outcome {
	return Outcome{Name: name, Action: ActionUpdated, EntryID: id, At: utc.Now()}
}

func created(name, id string) Outcome {
	return Outcome{Name: name, Action: ActionCreated, EntryID: id, At: utc.Now()}
}

func failed(name string, err error) Outcome {
	return Outcome{Name: name, Action: ActionFailed, Err: err, At: utc.Now()}
}

// Summary aggregates outcome counts for reporting.
type Summary struct {
	Skipped int
	Updated int
	Created int
	Failed  int
}

// Total returns the number of candidates processed.
func (s Summary) Total() int {
	return s.Skipped + s.Updated + s.Created + s.Failed
}

// Summarize counts outcomes by action.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Action {
		case ActionSkipped:
			s.Skipped++
		case ActionUpdated:
			s.Updated++
		case ActionCreated:
			s.Created++
		case ActionFailed:
			s.Failed++
		}
	}
	return s
}
