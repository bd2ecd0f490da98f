package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
)

// writeTestCatalog writes a catalog spreadsheet to disk for provider tests.
func writeTestCatalog(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	for i, h := range defaultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Sheet1", cell, h); err != nil {
			t.Fatalf("failed to set header cell: %v", err)
		}
	}
	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatalf("failed to set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save spreadsheet: %v", err)
	}
}

func TestProvider_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.xlsx")
	writeTestCatalog(t, path, [][]string{
		{"BDBA", "T01: Machine Learning"},
	})

	initial, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	provider := catalog.NewProvider(path, initial, logger.NewNop())
	if provider.Get().TopicCount() != 1 {
		t.Fatalf("initial TopicCount() = %d, want 1", provider.Get().TopicCount())
	}

	writeTestCatalog(t, path, [][]string{
		{"BDBA", "T01: Machine Learning"},
		{"BDBA", "T02: Databases"},
	})

	if err := provider.Reload(); err != nil {
		t.Fatalf("Reload() error = %v, want nil", err)
	}
	if provider.Get().TopicCount() != 2 {
		t.Errorf("TopicCount() after reload = %d, want 2", provider.Get().TopicCount())
	}
}

func TestProvider_Reload_KeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.xlsx")
	writeTestCatalog(t, path, [][]string{
		{"BDBA", "T01: Machine Learning"},
	})

	initial, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	provider := catalog.NewProvider(path, initial, logger.NewNop())

	// Corrupt the spreadsheet so the next load fails.
	if err := os.WriteFile(path, []byte("not an xlsx document"), 0644); err != nil {
		t.Fatalf("failed to corrupt spreadsheet: %v", err)
	}

	if err := provider.Reload(); err == nil {
		t.Fatal("Reload() error = nil, want error for corrupt spreadsheet")
	}
	if provider.Get().TopicCount() != 1 {
		t.Errorf("TopicCount() after failed reload = %d, want previous catalog intact", provider.Get().TopicCount())
	}
}
