package diagfmt

// PrettyOpts configures the human-readable diagnostic rendering.
type PrettyOpts struct {
	Color bool
	// Context is the number of source lines shown around the primary
	// line.
	Context int
	ShowNotes bool
	ShowFixes bool
}

// DefaultPrettyOpts is what the CLI uses unless flags say otherwise.
func DefaultPrettyOpts() PrettyOpts {
	return PrettyOpts{Context: 2, ShowNotes: true, ShowFixes: true}
}

// JSONOpts configures machine-readable diagnostic output.
type JSONOpts struct {
	IncludeNotes bool
	IncludeFixes bool
	// Max truncates the emitted list; zero means everything.
	Max int
}
