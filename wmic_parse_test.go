package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWmicOutput = "\r\n" +
	"Index=1\r\n" +
	"InterfaceType=USB\r\n" +
	"MediaType=Removable Media\r\n" +
	"Model=SanDisk Ultra USB Device\r\n" +
	"Size=30752636928\r\n" +
	"\r\n" +
	"\r\n" +
	"Index=0\r\n" +
	"InterfaceType=SCSI\r\n" +
	"MediaType=Fixed hard disk media\r\n" +
	"Model=SAMSUNG SSD 970\r\n" +
	"Size=500107862016\r\n" +
	"\r\n"

func TestParseWmicDisks(t *testing.T) {
	disks := parseWmicDisks(sampleWmicOutput)
	require.Len(t, disks, 2)

	// Sorted by index regardless of wmic's output order.
	assert.Equal(t, 0, disks[0].Number)
	assert.Equal(t, "SAMSUNG SSD 970", disks[0].Model)
	assert.Equal(t, "SCSI", disks[0].Bus)
	assert.False(t, disks[0].Removable)
	assert.Equal(t, int64(500107862016), disks[0].Size)

	assert.Equal(t, 1, disks[1].Number)
	assert.Equal(t, "SanDisk Ultra USB Device", disks[1].Model)
	assert.Equal(t, "USB", disks[1].Bus)
	assert.True(t, disks[1].Removable)
	assert.Equal(t, "28.64 GB", disks[1].SizeStr)
}

func TestParseWmicDisksSkipsBlocksWithoutIndex(t *testing.T) {
	out := "Model=ghost device\r\nSize=123\r\n\r\nIndex=2\r\nModel=real\r\nSize=0\r\n\r\n"
	disks := parseWmicDisks(out)
	require.Len(t, disks, 1)
	assert.Equal(t, 2, disks[0].Number)
	assert.Equal(t, "Unknown", disks[0].SizeStr)
}

func TestParseWmicDisksEmpty(t *testing.T) {
	assert.Empty(t, parseWmicDisks(""))
	assert.Empty(t, parseWmicDisks("\r\n\r\n"))
}
