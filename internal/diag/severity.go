package diag

// Severity orders diagnostics from informational to fatal.
type Severity uint8

const (
	// SevInfo is a purely informational annotation.
	SevInfo Severity = iota
	// SevWarning flags suspicious but accepted code.
	SevWarning
	// SevError flags code the front end rejects.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}
