package scout

// Answer is the caller-facing result of one loop run.
type Answer struct {
	// Text is the model's final answer, verbatim.
	Text string
	// Sources lists every search hit observed during the run, in the
	// order first seen, deduplicated by URL.
	Sources []SearchResult
	// Steps is the number of model calls the run took.
	Steps int
}
