package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/events"
	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
	"github.com/iedaejin/capstones-supervisors-form/internal/models"
	"github.com/iedaejin/capstones-supervisors-form/internal/store"
)

// Status is the terminal state of a submission run.
type Status string

const (
	// StatusPersisted: the submission passed validation and exactly one
	// record was appended to the store.
	StatusPersisted Status = "persisted"
	// StatusRejected: one or more validation rules failed; nothing was
	// written.
	StatusRejected Status = "rejected"
)

// Outcome is the result of driving one submission through the pipeline.
type Outcome struct {
	Status Status `json:"status"`
	// Record is the serialized record line, set when Status is persisted.
	Record string `json:"record,omitempty"`
	Result Result `json:"result"`
}

// Pipeline orchestrates submission handling: duplicate lookup, validation,
// serialization, append, event publication.
type Pipeline struct {
	store    *store.Store
	catalogs *catalog.Provider
	events   *events.Publisher
	log      logger.Logger

	// mu serializes the read-check-append sequence within this process.
	// The store itself provides no atomic check-and-append, so without
	// this two in-flight submissions could both pass the duplicate check
	// before either appends. Independent processes sharing the store file
	// remain unprotected.
	mu sync.Mutex
}

// New creates a submission pipeline. The events publisher may be nil.
func New(s *store.Store, catalogs *catalog.Provider, publisher *events.Publisher, log logger.Logger) *Pipeline {
	return &Pipeline{
		store:    s,
		catalogs: catalogs,
		events:   publisher,
		log:      log,
	}
}

// Submit runs one submission through validation and, on acceptance,
// persists it. Either exactly one full record is appended or none is.
//
// A non-nil error means persistence failed (or the store could not be
// read); the submission was not recorded and may be resubmitted as-is.
func (p *Pipeline) Submit(ctx context.Context, sub models.Submission) (*Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, err := p.store.ExistingNames()
	if err != nil {
		return nil, fmt.Errorf("read existing names: %w", err)
	}

	result := Validate(sub, p.catalogs.Get(), existing)
	if !result.Accepted() {
		p.log.Info("Submission rejected",
			logger.String("supervisor", sub.TrimmedName()),
			logger.Int("rejections", len(result.Rejections)),
		)
		return &Outcome{Status: StatusRejected, Result: result}, nil
	}

	record := store.FormatRecord(sub)
	if err := p.store.Append(record); err != nil {
		return nil, err
	}

	p.log.Info("Supervisor registered",
		logger.String("supervisor", sub.TrimmedName()),
		logger.Int("capacity", sub.Capacity),
		logger.Int("topics", sub.TopicCount()),
	)

	p.events.PublishAsync(ctx, events.RegistrationEvent{
		EventType: events.SupervisorRegistered,
		Payload: events.SupervisorRegisteredPayload{
			Supervisor: sub.TrimmedName(),
			Capacity:   sub.Capacity,
			Programs:   selectedPrograms(sub),
			Topics:     sub.TopicCount(),
		},
	})

	return &Outcome{Status: StatusPersisted, Record: record, Result: result}, nil
}

func selectedPrograms(sub models.Submission) []string {
	programs := make([]string, 0, len(sub.Selections))
	for _, sel := range sub.Selections {
		programs = append(programs, sel.Program)
	}
	return programs
}
