package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 bytes", formatBytes(512))
	assert.Equal(t, "1.00 KB", formatBytes(kb))
	assert.Equal(t, "1.50 MB", formatBytes(3*mb/2))
	assert.Equal(t, "28.64 GB", formatBytes(30752636928))
	assert.Equal(t, "2.00 TB", formatBytes(2*tb))
}

func TestPrintDiskTable(t *testing.T) {
	out := &bytes.Buffer{}
	printDiskTable(out, []DiskInfo{
		{Number: 0, Model: "SAMSUNG SSD 970", SizeStr: "465.76 GB", Bus: "SCSI"},
		{Number: 1, Model: "SanDisk Ultra", SizeStr: "28.64 GB", Bus: "USB", Removable: true},
	})

	s := out.String()
	assert.Contains(t, s, "DISK")
	assert.Contains(t, s, "SAMSUNG SSD 970")
	assert.Contains(t, s, "SanDisk Ultra")
	assert.Contains(t, s, "yes")
}

func TestPrintDiskTableEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	printDiskTable(out, nil)
	assert.Contains(t, out.String(), "No disks found")
}
