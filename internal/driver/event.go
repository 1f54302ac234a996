package driver

// Stage identifies a pipeline phase in progress events.
type Stage uint8

const (
	// StageLex is tokenization.
	StageLex Stage = iota
	// StageParse is syntax analysis.
	StageParse
	// StageCheck is semantic analysis.
	StageCheck
)

var stageNames = [...]string{
	StageLex:   "lexing",
	StageParse: "parsing",
	StageCheck: "checking",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Status is the outcome carried by a progress event.
type Status uint8

const (
	// StatusRunning marks a stage that just started.
	StatusRunning Status = iota
	// StatusDone marks a file that finished cleanly.
	StatusDone
	// StatusFailed marks a file that produced errors.
	StatusFailed
	// StatusCached marks a file replayed from the disk cache.
	StatusCached
)

// Event is one progress update from a directory run.
type Event struct {
	Path   string
	Stage  Stage
	Status Status
}
