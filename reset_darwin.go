//go:build darwin

package main

import "fmt"

// resetDevice hands the reset to diskutil, which unmounts, partitions
// (MBR), formats FAT32 and remounts in one step. A Full wipe zero-fills
// the device first via secureErase level 0.
func resetDevice(req ResetRequest) error {
	dev := fmt.Sprintf("disk%d", req.Disk)

	if req.Mode == WipeFull {
		out, err := runUtility("diskutil", []string{"secureErase", "0", dev}, "")
		if out != "" {
			fmt.Print(out)
		}
		if err != nil {
			return err
		}
	}

	out, err := runUtility("diskutil", []string{"eraseDisk", "FAT32", req.Label, "MBR", dev}, "")
	if out != "" {
		fmt.Print(out)
	}
	return err
}
