//go:build linux

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstPartition(t *testing.T) {
	cases := map[string]string{
		"/dev/sdb":     "/dev/sdb1",
		"/dev/sdc":     "/dev/sdc1",
		"/dev/nvme0n1": "/dev/nvme0n1p1",
		"/dev/mmcblk0": "/dev/mmcblk0p1",
	}
	for dev, want := range cases {
		assert.Equal(t, want, firstPartition(dev), "device %s", dev)
	}
}
