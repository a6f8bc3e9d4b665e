// Package reconcile implements the catalog reconciliation procedure: given a
// freshly generated batch of candidate entries and the current contents of
// the destination catalog, decide per candidate whether to skip (exact name
// match), update an existing entry in place (similarity match judged by an
// oracle), or create a new entry.
//
// The reconciler is deliberately sequential: candidates are processed one at
// a time in input order against a snapshot of the catalog taken once at the
// start of the run. The remote store is never re-queried mid-batch, so
// concurrent external writes during a run are not observed. Entries created
// during the batch are appended to the local working set, which keeps a
// single run from inserting near-duplicates of its own making.
package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// Store is the remote collection the reconciler reads and conditionally
// patches. List returns the full snapshot used for the whole run.
type Store interface {
	// List returns all existing entries in the destination catalog.
	List(ctx context.Context) ([]catalog.Entry, error)

	// Create allocates a new entry with the candidate's fields, including
	// its name, and returns the id issued by the store.
	Create(ctx context.Context, c catalog.Candidate) (string, error)

	// Update overwrites the descriptive fields of the entry with the given
	// id. The entry's name is never changed by an update.
	Update(ctx context.Context, id string, c catalog.Candidate) error
}

// Oracle judges whether a candidate name refers to one of the existing
// entries. The reconciler treats it as a pure function: it never trusts the
// returned index blindly and recovers from oracle failures by treating the
// candidate as unmatched.
type Oracle interface {
	Classify(ctx context.Context, name string, existing []string) (Match, error)
}

// Reconciler applies candidate batches to a destination catalog.
type Reconciler struct {
	store  Store
	oracle Oracle
	logger *zerolog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger overrides the logger used for per-candidate decisions. Without
// it the reconciler logs through the context logger (logging.Ctx).
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// New creates a Reconciler over the given store and similarity oracle.
func New(store Store, oracle Oracle, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:  store,
		oracle: oracle,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// run holds the working set for one reconciliation batch: the entries known
// at the start of the run plus any entries created during it.
type run struct {
	store   Store
	oracle  Oracle
	logger  *zerolog.Logger
	entries []catalog.Entry
	names   []string
}

// Reconcile processes the candidate batch in input order and returns one
// outcome per candidate. The only fatal error is failing to take the
// initial snapshot; every per-candidate failure is recorded as a Failed
// outcome and the batch continues.
func (r *Reconciler) Reconcile(ctx context.Context, candidates []catalog.Candidate) ([]Outcome, error) {
	snapshot, err := r.store.List(ctx)
	if err != nil {
		return nil, errors.NewStoreError("query", "", err)
	}

	logger := r.logger
	if logger == nil {
		logger = logging.Ctx(ctx)
	}

	batch := &run{
		store:   r.store,
		oracle:  r.oracle,
		logger:  logger,
		entries: snapshot,
		names:   make([]string, len(snapshot)),
	}
	for i, e := range snapshot {
		batch.names[i] = e.Name
	}

	outcomes := make([]Outcome, 0, len(candidates))
	for _, raw := range candidates {
		c := Normalize(raw)
		outcome := batch.reconcileOne(ctx, c)

		logger.Info().
			Str("candidate", c.Name).
			Str("action", string(outcome.Action)).
			Str("entry_id", outcome.EntryID).
			Msg("Reconciled candidate")

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// reconcileOne decides and applies the action for a single normalized
// candidate against the current working set.
func (b *run) reconcileOne(ctx context.Context, c catalog.Candidate) Outcome {
	// Exact name match takes precedence over similarity classification and
	// is never skipped.
	for _, e := range b.entries {
		if e.Name == c.Name {
			return skipped(c.Name, e.ID)
		}
	}

	match := b.classify(ctx, c.Name)
	if match.Verdict == VerdictMatch {
		entry := b.entries[match.Index]
		if err := b.store.Update(ctx, entry.ID, c); err != nil {
			return failed(c.Name, errors.NewStoreError("update", entry.ID, err))
		}
		return updated(c.Name, entry.ID)
	}

	id, err := b.store.Create(ctx, c)
	if err != nil {
		return failed(c.Name, errors.NewStoreError("create", "", err))
	}

	// Later candidates in this batch match against the entry we just made.
	b.entries = append(b.entries, catalog.Entry{ID: id, Name: c.Name})
	b.names = append(b.names, c.Name)

	return created(c.Name, id)
}

// classify invokes the oracle and reduces its answer to either a
// range-checked match or no match. Oracle errors, unparseable verdicts, and
// out-of-range indexes all fail open toward creation.
func (b *run) classify(ctx context.Context, name string) Match {
	match, err := b.oracle.Classify(ctx, name, b.names)
	if err != nil {
		b.logger.Warn().Err(err).
			Str("candidate", name).
			Msg("Similarity classification failed, treating as no match")
		return NoMatch()
	}

	switch match.Verdict {
	case VerdictMatch:
		if match.Index < 0 || match.Index >= len(b.names) {
			b.logger.Warn().
				Str("candidate", name).
				Int("index", match.Index).
				Int("existing", len(b.names)).
				Msg("Oracle returned out-of-range index, treating as no match")
			return NoMatch()
		}
		return match
	case VerdictInvalid:
		b.logger.Debug().
			Str("candidate", name).
			Msg("Oracle verdict unparseable, treating as no match")
		return NoMatch()
	default:
		return NoMatch()
	}
}
