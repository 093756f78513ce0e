package attachments

import "fmt"

const (
	kb = 1024
	mb = 1024 * 1024
)

// FormatFileSize renders a document byte count for display.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	}
}
