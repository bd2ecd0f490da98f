// Command gentemplate generates the Excel topic catalog template.
// Usage: go run cmd/gentemplate/main.go
package main

import (
	"log"
	"os"

	"github.com/xuri/excelize/v2"
)

func main() {
	f := excelize.NewFile()

	// Rename Sheet1 to Topics
	if err := f.SetSheetName("Sheet1", "Topics"); err != nil {
		log.Fatal(err)
	}

	// Add headers
	headers := []string{"Program", "Topics"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.SetCellValue("Topics", cell, h); err != nil {
			log.Fatal(err)
		}
	}

	// Add example rows
	rows := [][]string{
		{"BDBA", "T01: Predictive Analytics for Retail Demand"},
		{"BDBA", "T02: Data Pipelines for Real-Time Dashboards"},
		{"BCSAI", "T01: Computer Vision for Quality Control"},
		{"BBA+BDBA", "T01: Business Model Analysis with Customer Data"},
		{"PPLE+DBA", "T01: Policy Impact Measurement"},
	}
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				log.Fatal(err)
			}
			if err := f.SetCellValue("Topics", cell, v); err != nil {
				log.Fatal(err)
			}
		}
	}

	// Create Instructions sheet
	if _, err := f.NewSheet("Instructions"); err != nil {
		log.Fatal(err)
	}
	instructions := []string{
		"Column Descriptions:",
		"",
		"Program - Required. Program name (e.g., BDBA, BCSAI, BBA+BDBA, PPLE+DBA)",
		"Topics - Required. Topic cell in 'TXX: Description' format",
		"",
		"The topic number is read from the first 'T' followed by digits;",
		"rows without such a marker are skipped during catalog load.",
		"Alternate program spellings are normalized to their canonical name.",
	}
	for i, line := range instructions {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.SetCellValue("Instructions", cell, line); err != nil {
			log.Fatal(err)
		}
	}

	// Ensure examples directory exists
	if err := os.MkdirAll("examples", 0755); err != nil {
		log.Fatal(err)
	}

	// Save the file
	if err := f.SaveAs("examples/topics-catalog-template.xlsx"); err != nil {
		log.Fatal(err)
	}
	log.Println("Created examples/topics-catalog-template.xlsx")
}
