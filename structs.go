package main

var appversion = "0.1.3"

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
	tb = 1 << 40
	pb = 1 << 50
)

// WipeMode selects how much of the disk the clean step destroys.
type WipeMode int

const (
	// WipeFast removes the partition table only, sector contents survive.
	WipeFast WipeMode = iota
	// WipeFull overwrites every sector on the disk.
	WipeFull
)

func (m WipeMode) String() string {
	if m == WipeFull {
		return "Full"
	}
	return "Fast"
}

// ResetRequest carries the three operator inputs for a single reset run.
// It lives for one invocation and is discarded after dispatch.
type ResetRequest struct {
	Disk  int
	Label string
	Mode  WipeMode
}

// DiskInfo represents one row of the advisory disk listing
type DiskInfo struct {
	Number    int
	Path      string // device path where the platform has one, empty on Windows
	Model     string
	Size      int64  // Size in bytes, 0 if unavailable
	SizeStr   string // Formatted size string
	Bus       string
	Removable bool
}
