package hostapi

// Level is the severity a plugin attaches to a message written through
// the API.
type Level int32

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String returns a human-readable level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}
