//go:build windows

package main

import "fmt"

// resetDevice pipes the reset script into diskpart as one block and
// surfaces diskpart's output and exit status verbatim.
func resetDevice(req ResetRequest) error {
	out, err := runUtility("diskpart", nil, diskpartScript(req))
	if out != "" {
		fmt.Print(out)
	}
	return err
}
