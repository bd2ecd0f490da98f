// Package models defines the domain types for supervisor registration.
package models

import (
	"fmt"
	"strings"
)

// Supervisor capacity bounds (students per supervisor).
const (
	CapacityMin = 1
	CapacityMax = 10
)

// ExpertiseLevel is a qualitative proficiency tier for a supervisor-topic
// pairing.
type ExpertiseLevel string

const (
	Expert       ExpertiseLevel = "Expert"
	Advanced     ExpertiseLevel = "Advanced"
	Intermediate ExpertiseLevel = "Intermediate"
	Beginner     ExpertiseLevel = "Beginner"
)

// ExpertiseLevels lists all levels in descending order of proficiency.
var ExpertiseLevels = []ExpertiseLevel{Expert, Advanced, Intermediate, Beginner}

// Valid reports whether l is one of the known expertise levels.
func (l ExpertiseLevel) Valid() bool {
	switch l {
	case Expert, Advanced, Intermediate, Beginner:
		return true
	}
	return false
}

// Topic is a single capstone topic within a program.
type Topic struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
}

// TopicID derives the canonical topic identifier for a program and topic
// number, format "<Program>_T<NN>". The number is zero-padded to a minimum
// of two digits; larger numbers are never truncated.
func TopicID(program string, number int) string {
	return fmt.Sprintf("%s_T%02d", program, number)
}

// TopicSelection pairs a topic number with the supervisor's expertise level.
type TopicSelection struct {
	Number    int            `json:"number"`
	Expertise ExpertiseLevel `json:"expertise"`
}

// ProgramSelection holds the topics a supervisor selected for one program.
// Selections are slices, not maps: the order topics were picked in is part
// of the persisted record format and must survive end-to-end.
type ProgramSelection struct {
	Program string           `json:"program"`
	Topics  []TopicSelection `json:"topics"`
}

// Submission is a candidate supervisor registration as received from the
// form client, before validation.
type Submission struct {
	Name       string             `json:"name"`
	Capacity   int                `json:"capacity"`
	Selections []ProgramSelection `json:"selections"`
}

// TrimmedName returns the supervisor name with surrounding whitespace
// removed. Duplicate detection operates on trimmed names.
func (s Submission) TrimmedName() string {
	return strings.TrimSpace(s.Name)
}

// TopicCount returns the total number of topics selected across all
// programs.
func (s Submission) TopicCount() int {
	total := 0
	for _, sel := range s.Selections {
		total += len(sel.Topics)
	}
	return total
}
