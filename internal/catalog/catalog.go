// Package catalog loads the topic catalog from the capstone topics
// spreadsheet and exposes it as programs with ordered topic lists.
package catalog

import (
	"sort"
	"strings"

	"github.com/iedaejin/capstones-supervisors-form/internal/models"
)

// programAliases maps raw spreadsheet program spellings to canonical
// program names. Spellings not listed here pass through unchanged, so new
// programs can appear in the spreadsheet without a code change.
var programAliases = map[string]string{
	"BDBA":                       "BDBA",
	"BCSAI":                      "BCSAI",
	"BBA+BDBA":                   "BBA+BDBA",
	"BBBA+BDBA (joint capstone)": "BBA+BDBA",
	"BDBA+BDBA (only BDBA)":      "BBA+BDBA",
	"PPLE+DBA":                   "PPLE+DBA",
	"PPLE+BDA (only DBA)":        "PPLE+DBA",
}

// CanonicalProgram normalizes a raw program spelling to its canonical name.
// The mapping is idempotent: canonical names map to themselves.
func CanonicalProgram(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := programAliases[trimmed]; ok {
		return canonical
	}
	return trimmed
}

// Catalog is the normalized collection of programs and their topics for one
// load of the spreadsheet. It is immutable once built.
type Catalog struct {
	topics map[string][]models.Topic
}

// New builds a catalog from topics grouped by canonical program name.
// Topic lists are copied and sorted by ascending number.
func New(topics map[string][]models.Topic) *Catalog {
	grouped := make(map[string][]models.Topic, len(topics))
	for program, list := range topics {
		copied := make([]models.Topic, len(list))
		copy(copied, list)
		sort.Slice(copied, func(i, j int) bool { return copied[i].Number < copied[j].Number })
		grouped[program] = copied
	}
	return &Catalog{topics: grouped}
}

// Programs returns the canonical program names in sorted order.
func (c *Catalog) Programs() []string {
	programs := make([]string, 0, len(c.topics))
	for program := range c.topics {
		programs = append(programs, program)
	}
	sort.Strings(programs)
	return programs
}

// Topics returns the topics for a program, ordered by ascending topic
// number. Returns nil for unknown programs.
func (c *Catalog) Topics(program string) []models.Topic {
	return c.topics[program]
}

// HasProgram reports whether the catalog contains the given program.
func (c *Catalog) HasProgram(program string) bool {
	_, ok := c.topics[program]
	return ok
}

// HasTopic reports whether the catalog contains the given topic number
// within a program.
func (c *Catalog) HasTopic(program string, number int) bool {
	for _, topic := range c.topics[program] {
		if topic.Number == number {
			return true
		}
	}
	return false
}

// TopicCount returns the total number of topics across all programs.
func (c *Catalog) TopicCount() int {
	total := 0
	for _, topics := range c.topics {
		total += len(topics)
	}
	return total
}

// Empty reports whether the catalog holds no topics at all. An empty
// catalog is a degraded state distinct from an unavailable spreadsheet:
// the file was readable but contributed nothing.
func (c *Catalog) Empty() bool {
	return len(c.topics) == 0
}
