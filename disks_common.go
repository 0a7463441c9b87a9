package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// getDiskListData returns structured disk information
// Platform-specific implementations in disks_linux.go, disks_darwin.go, disks_windows.go
func getDiskListData() []DiskInfo {
	return getDiskListDataPlatform()
}

// printDiskTable renders the advisory disk listing.
func printDiskTable(w io.Writer, disks []DiskInfo) {
	if len(disks) == 0 {
		fmt.Fprintln(w, "No disks found (enumeration may require elevated privileges)")
		return
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DISK\tMODEL\tSIZE\tBUS\tREMOVABLE")
	for _, d := range disks {
		removable := ""
		if d.Removable {
			removable = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", d.Number, d.Model, d.SizeStr, d.Bus, removable)
	}
	_ = tw.Flush()
}
