package main

import (
	"sort"
	"strconv"
	"strings"
)

// parseWmicDisks parses `wmic diskdrive get ... /value` output: one
// Key=Value block per disk, blocks separated by blank lines. Blocks
// without a numeric Index are skipped.
func parseWmicDisks(out string) []DiskInfo {
	var disks []DiskInfo
	fields := map[string]string{}

	flush := func() {
		defer func() { fields = map[string]string{} }()
		if len(fields) == 0 {
			return
		}
		idx, err := strconv.Atoi(fields["Index"])
		if err != nil {
			return
		}
		size, _ := strconv.ParseInt(fields["Size"], 10, 64)
		sizeStr := "Unknown"
		if size > 0 {
			sizeStr = formatBytes(size)
		}
		disks = append(disks, DiskInfo{
			Number:    idx,
			Model:     fields["Model"],
			Size:      size,
			SizeStr:   sizeStr,
			Bus:       fields["InterfaceType"],
			Removable: strings.Contains(strings.ToLower(fields["MediaType"]), "removable"),
		})
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	flush()

	sort.Slice(disks, func(i, j int) bool { return disks[i].Number < disks[j].Number })
	return disks
}
