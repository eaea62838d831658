package cpu

import (
	"strings"
)

// LabelOf returns the label defined by a program line, which is the
// text preceding the first ':'.
func LabelOf(line string) (label string, ok bool) {
	before, _, found := strings.Cut(line, ":")
	if !found {
		return
	}

	label = strings.TrimSpace(before)
	ok = true
	return
}

// Labels maps label names to the index of the line defining them.
// When a name is defined more than once, the first definition wins.
type Labels map[string]int

// ScanLabels collects the labels of a program, in line order.
func ScanLabels(lines []string) (labels Labels) {
	labels = make(Labels, len(lines))
	for index, line := range lines {
		label, ok := LabelOf(line)
		if !ok {
			continue
		}
		if _, dup := labels[label]; dup {
			continue
		}
		labels[label] = index
	}

	return
}

// Relative returns the signed instruction offset from the line
// following index to the line defining label.
func (labels Labels) Relative(index int, label string) (offset int, err error) {
	target, ok := labels[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	offset = target - (index + 1)
	return
}

// Absolute returns the text segment address of the line defining label.
func (labels Labels) Absolute(label string) (address uint32, err error) {
	target, ok := labels[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	address = TextAddress(target)
	return
}
