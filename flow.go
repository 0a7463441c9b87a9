package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted reports a reset stopped before anything was dispatched.
var errAborted = errors.New("aborted, no changes made")

// resetFlow is the confirmation-gated controller around the platform
// partitioning utility. Strictly sequential: every prompt blocks, the
// dispatch blocks until the utility exits.
type resetFlow struct {
	prompt      prompter
	dispatch    func(ResetRequest) error
	listData    func() []DiskInfo
	perms       func() error
	out         io.Writer
	skipConfirm bool
}

// run resolves the reset request from arguments and prompts, gates it on
// an explicit acknowledgment and hands it to the platform backend. No
// command reaches the partitioning utility before the gate is satisfied.
func (f *resetFlow) run(args []string) error {
	if f.perms != nil {
		if err := f.perms(); err != nil {
			return err
		}
	}

	req, err := f.resolve(args)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return errAborted
		}
		return err
	}

	f.printWarning(req)

	if !f.skipConfirm {
		ok, err := f.prompt.confirm(fmt.Sprintf("Reset disk %d, erasing everything on it?", req.Disk))
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return errAborted
			}
			return err
		}
		if !ok {
			return errAborted
		}
	}

	if err := f.dispatch(req); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Fprintf(f.out, "\nDone. Disk %d reset with a %s wipe, volume label %s.\n",
		req.Disk, req.Mode, req.Label)
	return nil
}

// resolve fills the request from the positional arguments (disk, label,
// mode) and prompts for every missing field in the fixed order disk,
// mode, label. Arguments are validated before any prompt is shown, and a
// field passed as an argument is never re-prompted.
func (f *resetFlow) resolve(args []string) (ResetRequest, error) {
	var req ResetRequest
	haveDisk, haveLabel, haveMode := len(args) > 0, len(args) > 1, len(args) > 2

	var err error
	if haveDisk {
		if req.Disk, err = parseDiskNumber(args[0]); err != nil {
			return req, err
		}
	}
	if haveLabel {
		req.Label = normalizeLabel(args[1])
	}
	if haveMode {
		if req.Mode, err = parseWipeMode(args[2]); err != nil {
			return req, err
		}
	}

	// Advisory only, the chosen number is not validated against it.
	disks := f.listData()
	printDiskTable(f.out, disks)

	if !haveDisk {
		if req.Disk, err = f.prompt.pickDisk(disks); err != nil {
			return req, err
		}
	}
	if !haveMode {
		if req.Mode, err = f.prompt.pickMode(); err != nil {
			return req, err
		}
	}
	if !haveLabel {
		raw, err := f.prompt.askLabel()
		if err != nil {
			return req, err
		}
		req.Label = normalizeLabel(raw)
	}
	return req, nil
}

// printWarning renders the mode-specific consequences before the gate.
func (f *resetFlow) printWarning(req ResetRequest) {
	fmt.Fprintln(f.out)
	if req.Mode == WipeFull {
		fmt.Fprintf(f.out, "WARNING: a Full wipe of disk %d overwrites every sector on the device.\n", req.Disk)
		fmt.Fprintln(f.out, "All data is destroyed beyond recovery. This can take hours on large disks.")
	} else {
		fmt.Fprintf(f.out, "WARNING: a Fast wipe of disk %d removes the partition table only.\n", req.Disk)
		fmt.Fprintln(f.out, "Partitions and files become inaccessible, but sector contents remain recoverable.")
	}
}
