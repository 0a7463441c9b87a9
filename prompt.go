package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// prompter solicits the fields the operator did not pass as arguments.
type prompter interface {
	pickDisk(disks []DiskInfo) (int, error)
	pickMode() (WipeMode, error)
	askLabel() (string, error)
	confirm(question string) (bool, error)
}

// surveyPrompter asks on the controlling terminal.
type surveyPrompter struct{}

func (surveyPrompter) pickDisk(disks []DiskInfo) (int, error) {
	if len(disks) == 0 {
		// Nothing enumerated, fall back to a free-form number.
		var answer string
		if err := survey.AskOne(&survey.Input{Message: "Disk number to reset:"}, &answer); err != nil {
			return 0, err
		}
		return parseDiskNumber(answer)
	}

	options := make([]string, len(disks))
	for i, d := range disks {
		options[i] = fmt.Sprintf("%d: %s (%s, %s)", d.Number, d.Model, d.SizeStr, d.Bus)
	}
	var picked string
	if err := survey.AskOne(&survey.Select{Message: "Disk to reset:", Options: options}, &picked); err != nil {
		return 0, err
	}
	num, _, _ := strings.Cut(picked, ":")
	return strconv.Atoi(num)
}

func (surveyPrompter) pickMode() (WipeMode, error) {
	var picked string
	err := survey.AskOne(&survey.Select{
		Message: "Wipe mode:",
		Options: []string{"Fast", "Full"},
	}, &picked)
	if err != nil {
		return WipeFast, err
	}
	return parseWipeMode(picked)
}

func (surveyPrompter) askLabel() (string, error) {
	var label string
	err := survey.AskOne(&survey.Input{
		Message: "Volume label (blank for " + defaultLabel + "):",
	}, &label)
	return label, err
}

func (surveyPrompter) confirm(question string) (bool, error) {
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: question, Default: false}, &ok)
	return ok, err
}
