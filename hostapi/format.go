package hostapi

import "fmt"

// MaxMessageLen is the longest formatted message the API will hand to
// its sink. Anything longer is cut and marked, never passed through
// whole.
const MaxMessageLen = 2048

const truncationMark = "...(truncated)"

// formatBounded formats like fmt.Sprintf but caps the result at
// MaxMessageLen bytes, appending the truncation marker when it cuts.
func formatBounded(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if len(msg) <= MaxMessageLen {
		return msg
	}
	return msg[:MaxMessageLen-len(truncationMark)] + truncationMark
}
