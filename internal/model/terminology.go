package model

import "fmt"

// Terminology selects how element descriptions are worded.
type Terminology string

const (
	// TerminologyNatural uses the element's human-readable role description.
	TerminologyNatural Terminology = "natural"
	// TerminologyRaw uses raw attribute names, with subrole overriding role.
	TerminologyRaw Terminology = "raw"
	// TerminologyAccessibility uses the protocol-level role attribute itself.
	TerminologyAccessibility Terminology = "accessibility"
	// TerminologyAppleScript uses script-style "class ordinal" references.
	TerminologyAppleScript Terminology = "appleScript"
)

// ParseTerminology maps a user-supplied string to a Terminology value.
func ParseTerminology(s string) (Terminology, error) {
	switch Terminology(s) {
	case TerminologyNatural, TerminologyRaw, TerminologyAccessibility, TerminologyAppleScript:
		return Terminology(s), nil
	}
	return "", fmt.Errorf("unknown terminology %q (want natural, raw, accessibility or appleScript)", s)
}

// Settings holds the process-wide preferences the snapshot store reads.
// One instance is created in main and shared by reference; the store reads
// it on every label composition but never writes it.
type Settings struct {
	Terminology Terminology
}

// NewSettings returns settings with the default terminology.
func NewSettings() *Settings {
	return &Settings{Terminology: TerminologyNatural}
}
