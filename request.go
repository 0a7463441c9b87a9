package main

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultLabel is applied when the operator leaves the label blank.
const defaultLabel = "USB"

// maxLabelLen is the FAT volume label limit.
const maxLabelLen = 11

// fatLabelIllegal lists characters a FAT volume label cannot carry.
const fatLabelIllegal = "\"*+,./:;<=>?[\\]|"

// parseWipeMode accepts fast or full in any case.
func parseWipeMode(s string) (WipeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return WipeFast, nil
	case "full":
		return WipeFull, nil
	}
	return WipeFast, fmt.Errorf("invalid wipe mode %q, want Fast or Full", s)
}

// parseDiskNumber validates the operator-supplied disk number.
func parseDiskNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid disk number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid disk number %d, must not be negative", n)
	}
	return n, nil
}

// normalizeLabel turns raw operator input into a FAT32 volume label.
// Blank input falls back to the default, illegal characters are dropped,
// the result is uppercased and truncated to eleven characters.
func normalizeLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if strings.ContainsRune(fatLabelIllegal, r) {
			continue
		}
		b.WriteRune(r)
	}
	label := b.String()
	if label == "" {
		return defaultLabel
	}
	if r := []rune(label); len(r) > maxLabelLen {
		label = string(r[:maxLabelLen])
	}
	return label
}
