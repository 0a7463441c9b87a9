//go:build !windows

package main

import "os"

func isElevated() bool { return os.Geteuid() == 0 }

func elevationHint() string { return "root" }
