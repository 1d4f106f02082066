package scout

// Step is a sealed interface representing one parsed unit of model
// output: a tool directive, a terminal answer, or text that matched
// neither. Making the malformed case a first-class variant keeps the
// failure mode explicit instead of burying it in ad hoc string search.
// The unexported marker method prevents external implementations.
type Step interface {
	step()
}

// ActionStep is a directive naming a tool and its input.
type ActionStep struct {
	Tool    string
	Input   string
	Thought string
}

func (ActionStep) step() {}

// FinalAnswerStep is the terminal output of a loop run.
type FinalAnswerStep struct {
	Text string
}

func (FinalAnswerStep) step() {}

// MalformedStep carries output that matched neither marker.
type MalformedStep struct {
	Raw string
}

func (MalformedStep) step() {}

// Interface compliance checks.
var (
	_ Step = ActionStep{}
	_ Step = FinalAnswerStep{}
	_ Step = MalformedStep{}
)
