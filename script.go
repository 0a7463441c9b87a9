package main

import (
	"fmt"
	"strings"
)

// diskpartScript builds the command block piped to diskpart's stdin.
// The clean line depends on the wipe mode: "clean" drops the partition
// table, "clean all" zeroes every sector first. The rest of the sequence
// is fixed: MBR table, one primary partition spanning the disk, quick
// FAT32 format, mount point assignment.
func diskpartScript(req ResetRequest) string {
	clean := "clean"
	if req.Mode == WipeFull {
		clean = "clean all"
	}
	lines := []string{
		fmt.Sprintf("select disk %d", req.Disk),
		"attributes disk clear readonly",
		clean,
		"convert mbr",
		"create partition primary",
		fmt.Sprintf("format fs=fat32 quick label=%q", req.Label),
		"assign",
		"exit",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
