//go:build darwin

package main

import (
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	wholeDiskRe = regexp.MustCompile(`^disk(\d+)$`)
	diskSizeRe  = regexp.MustCompile(`\((\d+) Bytes\)`)
)

func getDiskListDataPlatform() []DiskInfo {
	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil
	}

	var disks []DiskInfo
	for _, entry := range entries {
		m := wholeDiskRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		info := diskutilInfo(entry.Name())

		var size int64
		if sm := diskSizeRe.FindStringSubmatch(info["Disk Size"]); sm != nil {
			size, _ = strconv.ParseInt(sm[1], 10, 64)
		}
		sizeStr := "Unknown"
		if size > 0 {
			sizeStr = formatBytes(size)
		}

		model := info["Device / Media Name"]
		if model == "" {
			model = entry.Name()
		}

		disks = append(disks, DiskInfo{
			Number:    num,
			Path:      "/dev/" + entry.Name(),
			Model:     model,
			Size:      size,
			SizeStr:   sizeStr,
			Bus:       info["Protocol"],
			Removable: strings.EqualFold(info["Removable Media"], "Removable"),
		})
	}

	sort.Slice(disks, func(i, j int) bool { return disks[i].Number < disks[j].Number })
	return disks
}

// diskutilInfo flattens `diskutil info` output into key/value pairs.
func diskutilInfo(dev string) map[string]string {
	out, err := exec.Command("diskutil", "info", dev).Output()
	if err != nil {
		return map[string]string{}
	}
	info := map[string]string{}
	for _, line := range strings.Split(string(out), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		info[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return info
}
