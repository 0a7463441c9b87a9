//go:build linux

package main

import "fmt"

// sfdisk script for a dos label holding one partition spanning the disk.
const sfdiskScript = "label: dos\n,;\n"

// resetDevice rebuilds the disk as a single FAT32 primary partition with
// the Linux partitioning stack: wipefs drops old signatures (blkdiscard
// clears every sector first on a Full wipe), sfdisk writes a fresh dos
// label with one partition and mkfs.vfat formats it.
func resetDevice(req ResetRequest) error {
	dev, err := devicePathForDisk(req.Disk)
	if err != nil {
		return err
	}

	type step struct {
		name  string
		args  []string
		stdin string
	}

	steps := []step{{name: "wipefs", args: []string{"-a", dev}}}
	if req.Mode == WipeFull {
		steps = append(steps, step{name: "blkdiscard", args: []string{"-f", "-z", dev}})
	}
	steps = append(steps,
		step{name: "sfdisk", args: []string{dev}, stdin: sfdiskScript},
		step{name: "partprobe", args: []string{dev}},
		step{name: "mkfs.vfat", args: []string{"-F", "32", "-n", req.Label, firstPartition(dev)}},
	)

	for _, s := range steps {
		out, err := runUtility(s.name, s.args, s.stdin)
		if out != "" {
			fmt.Print(out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// firstPartition names the partition device sfdisk just created.
func firstPartition(dev string) string {
	if len(dev) > 0 && dev[len(dev)-1] >= '0' && dev[len(dev)-1] <= '9' {
		return dev + "p1"
	}
	return dev + "1"
}
