// Package store owns the on-disk supervisor record format: an append-only
// UTF-8 text file with one line per accepted registration. Records are
// never rewritten or deleted, only appended; the file lives for the whole
// collection campaign and downstream matching consumes it as-is.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
	"github.com/iedaejin/capstones-supervisors-form/internal/models"
)

// ErrPersistence indicates an I/O failure while appending a record. The
// store guarantees no partial line was written; the caller may retry.
var ErrPersistence = errors.New("record store persistence failure")

// header is the fixed comment block emitted when the store file is first
// created. The format is consumed by the downstream matching process and
// must not change.
const header = "# Supervisors choose 3-5 topics (program:topic:expertise)\n" +
	"# Format: SupervisorID: Capacity, Prog:Topic:Level, ...\n" +
	"# Programs: BDBA_T01-20, BCSAI_T01-20, BBA+BDBA_T01-20, PPLE+DBA_T01-20\n" +
	"\n"

const fileMode = 0o644

// Store reads and appends supervisor records in the flat-file store.
//
// Store provides no atomic check-and-append primitive: callers must obtain
// ExistingNames and check for duplicates before calling Append, and must
// serialize that sequence themselves (see registry.Pipeline).
type Store struct {
	path string
	log  logger.Logger
}

// New creates a store backed by the file at path. The file is not created
// until the first Append; absence is a valid initial state.
func New(path string, log logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// ExistingNames returns the set of supervisor names already recorded. The
// name is the substring before the first ':' of each record line, trimmed.
// A missing store file yields an empty set, not an error.
func (s *Store) ExistingNames() (map[string]struct{}, error) {
	names := make(map[string]struct{})

	err := s.scanRecords(func(line string) {
		name, _, found := strings.Cut(line, ":")
		if found {
			names[strings.TrimSpace(name)] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// Count returns the number of record lines in the store. Used for
// reporting only.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.scanRecords(func(string) { count++ })
	if err != nil {
		return 0, err
	}
	return count, nil
}

// scanRecords calls fn for every non-empty, non-comment line of the store.
func (s *Store) scanRecords(fn func(line string)) error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open store %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read store %s: %w", s.path, err)
	}
	return nil
}

// Append writes one serialized record to the store, creating the file with
// the fixed header block on first write. The header (when needed) and the
// newline-terminated record are written in a single write so a failure
// leaves no partial line behind.
//
// A record containing a line break is refused outright: each call must add
// exactly one line, and a split record would enter the duplicate index
// under a name nobody submitted.
func (s *Store) Append(record string) error {
	if strings.ContainsAny(record, "\n\r") {
		return fmt.Errorf("%w: record contains a line break", ErrPersistence)
	}

	payload := record + "\n"
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		payload = header + payload
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, fileMode)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrPersistence, s.path, err)
	}

	_, writeErr := f.WriteString(payload)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, s.path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close %s: %v", ErrPersistence, s.path, closeErr)
	}

	s.log.Debug("Record appended",
		logger.String("path", s.path),
		logger.Int("bytes", len(payload)),
	)
	return nil
}

// FormatRecord serializes an accepted submission into its record line:
//
//	<Name>: <Capacity>, <Prog>:<Prog_TNN>:<Level>, ...
//
// Program and topic order follows the submission's selection order; that
// ordering is externally visible and must be preserved.
func FormatRecord(sub models.Submission) string {
	parts := []string{fmt.Sprintf("%s: %d", sub.TrimmedName(), sub.Capacity)}

	for _, sel := range sub.Selections {
		for _, topic := range sel.Topics {
			parts = append(parts, fmt.Sprintf("%s:%s:%s",
				sel.Program,
				models.TopicID(sel.Program, topic.Number),
				topic.Expertise,
			))
		}
	}

	return strings.Join(parts, ", ")
}
