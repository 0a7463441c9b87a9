//go:build windows

package main

import "os/exec"

func getDiskListDataPlatform() []DiskInfo {
	out, err := exec.Command("wmic", "diskdrive", "get",
		"Index,InterfaceType,MediaType,Model,Size", "/value").Output()
	if err != nil {
		return nil
	}
	return parseWmicDisks(string(out))
}
