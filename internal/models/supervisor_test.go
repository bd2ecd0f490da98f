package models

import "testing"

func TestTopicID(t *testing.T) {
	tests := []struct {
		name    string
		program string
		number  int
		want    string
	}{
		{"single digit is padded", "BDBA", 3, "BDBA_T03"},
		{"two digits unchanged", "BCSAI", 12, "BCSAI_T12"},
		{"three digits not truncated", "BDBA", 123, "BDBA_T123"},
		{"zero", "BDBA", 0, "BDBA_T00"},
		{"program with plus sign", "BBA+BDBA", 7, "BBA+BDBA_T07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopicID(tt.program, tt.number)
			if got != tt.want {
				t.Errorf("TopicID(%q, %d) = %q, want %q", tt.program, tt.number, got, tt.want)
			}
		})
	}
}

func TestTopicID_Pure(t *testing.T) {
	first := TopicID("BDBA", 3)
	second := TopicID("BDBA", 3)
	if first != second {
		t.Errorf("TopicID is not deterministic: %q != %q", first, second)
	}
}

func TestExpertiseLevel_Valid(t *testing.T) {
	for _, level := range ExpertiseLevels {
		if !level.Valid() {
			t.Errorf("ExpertiseLevel(%q).Valid() = false, want true", level)
		}
	}

	for _, invalid := range []ExpertiseLevel{"", "expert", "Master", "EXPERT"} {
		if invalid.Valid() {
			t.Errorf("ExpertiseLevel(%q).Valid() = true, want false", invalid)
		}
	}
}

func TestSubmission_TopicCount(t *testing.T) {
	sub := Submission{
		Name:     "Dr. Smith",
		Capacity: 5,
		Selections: []ProgramSelection{
			{Program: "BDBA", Topics: []TopicSelection{
				{Number: 1, Expertise: Expert},
				{Number: 2, Expertise: Beginner},
			}},
			{Program: "BCSAI", Topics: []TopicSelection{
				{Number: 4, Expertise: Advanced},
			}},
		},
	}

	if got := sub.TopicCount(); got != 3 {
		t.Errorf("TopicCount() = %d, want 3", got)
	}

	empty := Submission{Name: "Dr. Smith", Capacity: 5}
	if got := empty.TopicCount(); got != 0 {
		t.Errorf("TopicCount() on empty selections = %d, want 0", got)
	}
}

func TestSubmission_TrimmedName(t *testing.T) {
	sub := Submission{Name: "  Dr. Smith \t"}
	if got := sub.TrimmedName(); got != "Dr. Smith" {
		t.Errorf("TrimmedName() = %q, want %q", got, "Dr. Smith")
	}
}
