//go:build windows

package main

import "golang.org/x/sys/windows"

func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

func elevationHint() string { return "Administrator" }
