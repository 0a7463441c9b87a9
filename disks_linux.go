//go:build linux

package main

import (
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
)

func getDiskListDataPlatform() []DiskInfo {
	block, err := ghw.Block()
	if err != nil {
		return nil
	}

	excludePrefixes := []string{"loop", "zram", "ram"}

	var disks []DiskInfo
	for _, d := range block.Disks {
		skip := false
		for _, prefix := range excludePrefixes {
			if strings.HasPrefix(d.Name, prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		model := d.Model
		if model == "" || model == "unknown" {
			model = d.Name
		}
		size := int64(d.SizeBytes)
		sizeStr := "Unknown"
		if size > 0 {
			sizeStr = formatBytes(size)
		}

		disks = append(disks, DiskInfo{
			Number:    len(disks),
			Path:      "/dev/" + d.Name,
			Model:     model,
			Size:      size,
			SizeStr:   sizeStr,
			Bus:       d.StorageController.String(),
			Removable: d.IsRemovable,
		})
	}
	return disks
}

// devicePathForDisk maps the operator's disk number back onto the device
// the same enumeration produced.
func devicePathForDisk(n int) (string, error) {
	for _, d := range getDiskListDataPlatform() {
		if d.Number == n {
			return d.Path, nil
		}
	}
	return "", fmt.Errorf("disk %d not found", n)
}
