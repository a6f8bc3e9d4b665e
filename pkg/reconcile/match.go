package reconcile

// Verdict classifies an oracle answer. The zero value is VerdictNoMatch so
// that an empty Match means "create a new entry".
type Verdict int

const (
	// VerdictNoMatch means the oracle judged the candidate distinct from
	// every existing entry.
	VerdictNoMatch Verdict = iota

	// VerdictMatch means the oracle pointed at an existing entry. Index
	// carries its position in the existing list and must still be
	// range-checked by the caller.
	VerdictMatch

	// VerdictInvalid means the oracle's output could not be parsed into
	// either of the above. Callers treat it like VerdictNoMatch.
	VerdictInvalid
)

// String returns the verdict name for logs.
func (v Verdict) String() string {
	switch v {
	case VerdictMatch:
		return "match"
	case VerdictInvalid:
		return "invalid"
	default:
		return "no-match"
	}
}

// Match is the typed result of a similarity classification.
type Match struct {
	Verdict Verdict

	// Index is the 0-based position of the matched entry in the existing
	// list passed to Classify. Only meaningful when Verdict is VerdictMatch.
	Index int
}

// MatchAt returns a match verdict pointing at the given index.
func MatchAt(index int) Match {
	return Match{Verdict: VerdictMatch, Index: index}
}

// NoMatch returns a no-match verdict.
func NoMatch() Match {
	return Match{Verdict: VerdictNoMatch}
}

// Unparseable returns an invalid verdict for output that could not be decoded.
func Unparseable() Match {
	return Match{Verdict: VerdictInvalid}
}
