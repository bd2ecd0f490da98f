package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iedaejin/capstones-supervisors-form/internal/models"
)

// Required catalog columns, matched by header name.
const (
	columnProgram = "Program"
	columnTopics  = "Topics"
)

var (
	// ErrUnavailable indicates the catalog spreadsheet does not exist.
	// Nothing can be validated against a missing catalog.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrMalformed indicates the spreadsheet exists but is structurally
	// unusable: required columns are missing, or data rows are present
	// but none yields a recognizable topic number.
	ErrMalformed = errors.New("catalog malformed")
)

// Load reads the topic catalog from the spreadsheet at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
		}
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads the topic catalog from an xlsx document.
//
// Rows are normalized through the program alias table and grouped by
// canonical program name; within each program topics are sorted by
// ascending number. Rows whose topic cell carries no recognizable topic
// number are skipped. When the same topic number appears twice within one
// program, the first occurrence wins.
//
// A sheet with a valid header but no data rows parses to an empty catalog,
// not an error.
func Parse(r io.Reader) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s has no header row", ErrMalformed, sheet)
	}

	programCol, topicsCol, err := findColumns(rows[0])
	if err != nil {
		return nil, err
	}

	topics := make(map[string][]models.Topic)
	seen := make(map[string]map[int]bool)
	dataRows := 0

	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		dataRows++

		rawProgram := cellAt(row, programCol)
		topicCell := strings.TrimSpace(cellAt(row, topicsCol))

		number, ok := topicNumber(topicCell)
		if !ok {
			continue
		}

		program := CanonicalProgram(rawProgram)
		if program == "" {
			continue
		}

		if seen[program] == nil {
			seen[program] = make(map[int]bool)
		}
		if seen[program][number] {
			continue
		}
		seen[program][number] = true

		topics[program] = append(topics[program], models.Topic{
			Number:      number,
			Description: topicCell,
		})
	}

	if dataRows > 0 && len(topics) == 0 {
		return nil, fmt.Errorf("%w: no row yields a recognizable topic number", ErrMalformed)
	}

	return New(topics), nil
}

// findColumns locates the Program and Topics columns in the header row.
func findColumns(header []string) (programCol, topicsCol int, err error) {
	programCol, topicsCol = -1, -1
	for i, cell := range header {
		switch strings.TrimSpace(cell) {
		case columnProgram:
			if programCol == -1 {
				programCol = i
			}
		case columnTopics:
			if topicsCol == -1 {
				topicsCol = i
			}
		}
	}
	if programCol == -1 || topicsCol == -1 {
		return 0, 0, fmt.Errorf("%w: required columns %q and %q not found", ErrMalformed, columnProgram, columnTopics)
	}
	return programCol, topicsCol, nil
}

// topicNumber extracts the first topic number from a topic cell. The
// grammar is a literal "T" (case-sensitive) immediately followed by one or
// more decimal digits; everything else in the cell is ignored. Returns
// false when the cell carries no such marker.
func topicNumber(cell string) (int, bool) {
	for i := 0; i+1 < len(cell); i++ {
		if cell[i] != 'T' || !isDigit(cell[i+1]) {
			continue
		}
		j := i + 1
		for j < len(cell) && isDigit(cell[j]) {
			j++
		}
		number, err := strconv.Atoi(cell[i+1 : j])
		if err != nil {
			continue
		}
		return number, true
	}
	return 0, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
