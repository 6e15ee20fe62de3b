package suggest

// Kind identifies which Outcome variant a value is.
type Kind int

const (
	KindSuggestion Kind = iota
	KindSolved
	KindExhausted
	KindStuck
)

var kindNames = [...]string{
	KindSuggestion: "suggestion",
	KindSolved:     "solved",
	KindExhausted:  "exhausted",
	KindStuck:      "stuck",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Terminal reports whether an outcome of this kind ends a session.
func (k Kind) Terminal() bool {
	return k != KindSuggestion
}

// Outcome is the result of one Suggest call. It is one of
// Suggestion, Solved, Exhausted or Stuck; callers switch on the type.
type Outcome interface {
	Kind() Kind
	outcome()
}

// Suggestion carries the next letter to ask about.
// Candidates is only set when the remaining set is short enough to show.
type Suggestion struct {
	Letter     byte
	Coverage   int
	Count      int
	Candidates []string
}

// Solved means exactly one candidate remains.
type Solved struct {
	Word string
}

// Exhausted means no candidate remains. LikelyNotAWord is set when no
// letter had been guessed yet, so the word is probably missing from the
// dictionary rather than mistracked.
type Exhausted struct {
	LikelyNotAWord bool
}

// Stuck means several candidates remain but no unguessed letter splits them.
type Stuck struct {
	Count int
}

func (Suggestion) Kind() Kind { return KindSuggestion }
func (Solved) Kind() Kind     { return KindSolved }
func (Exhausted) Kind() Kind  { return KindExhausted }
func (Stuck) Kind() Kind      { return KindStuck }

func (Suggestion) outcome() {}
func (Solved) outcome()     {}
func (Exhausted) outcome()  {}
func (Stuck) outcome()      {}
