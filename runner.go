package main

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gosuri/uilive"
)

// runUtility starts the named partitioning utility with script on its
// stdin, keeps a live elapsed-time line on the terminal while it runs and
// returns the combined output. A non-zero exit status comes back as an
// error carrying the code; the caller gets the output either way.
func runUtility(name string, args []string, script string) (string, error) {
	cmd := exec.Command(name, args...)
	if script != "" {
		cmd.Stdin = strings.NewReader(script)
	}

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start %s: %w", name, err)
	}

	writer := uilive.New()
	writer.Start()
	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_, _ = fmt.Fprintf(writer, "Running %s... %s\n", name, time.Since(start).Truncate(time.Second))
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	writer.Stop()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output.String(), fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		return output.String(), fmt.Errorf("run %s: %w", name, err)
	}
	return output.String(), nil
}
