package main

import "fmt"

// checkForPerms fails early when the process cannot drive the
// partitioning utility, before any prompt is shown.
func checkForPerms() error {
	if !isElevated() {
		return fmt.Errorf("modifying disks requires elevated privileges, re-run as %s", elevationHint())
	}
	return nil
}

// formatBytes renders a byte count with the largest unit that fits.
func formatBytes(b int64) string {
	switch {
	case b >= pb:
		return fmt.Sprintf("%.2f PB", float64(b)/float64(pb))
	case b >= tb:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(tb))
	case b >= gb:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(kb))
	}
	return fmt.Sprintf("%d bytes", b)
}
