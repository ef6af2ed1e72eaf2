package tui

const (
	// EllipsisMinLength is the minimum string length before
	// truncation adds ellipsis.
	EllipsisMinLength = 3
)

// TruncateString truncates a string and adds ellipsis if needed.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= EllipsisMinLength {
		return s[:maxLen]
	}

	return s[:maxLen-EllipsisMinLength] + "..."
}
