// Package export renders purchase orders as downloadable documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ContentType is the MIME type of WriteOrderCSV output.
const ContentType = "text/csv"

// OrderDocument is the printable form of one order. Amounts are preformatted.
type OrderDocument struct {
	RequestNumber int64
	Title         string
	Date          time.Time
	Status        string
	Requester     string
	Justification string
	Lines         []OrderLine
	GrandTotal    string
}

type OrderLine struct {
	Product   string
	Supplier  string
	Quantity  int
	UnitPrice string
	Total     string
}

// FileName returns the attachment name for an order export.
func FileName(requestNumber int64) string {
	return fmt.Sprintf("Order_%d.csv", requestNumber)
}

// WriteOrderCSV writes the metadata block, the item table and the grand total.
// Quoting of delimiters, quotes and newlines is left to encoding/csv.
func WriteOrderCSV(w io.Writer, doc OrderDocument) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Purchase Order", fmt.Sprintf("Request #%d", doc.RequestNumber)},
		{"Title", doc.Title},
		{"Date", doc.Date.UTC().Format(time.DateOnly)},
		{"Status", doc.Status},
		{"Requester", doc.Requester},
		{"Justification", doc.Justification},
		{},
		{"Product", "Supplier", "Quantity", "Unit Price", "Total"},
	}
	for _, line := range doc.Lines {
		records = append(records, []string{
			line.Product,
			line.Supplier,
			strconv.Itoa(line.Quantity),
			line.UnitPrice,
			line.Total,
		})
	}
	records = append(records,
		[]string{},
		[]string{"", "", "", "Grand Total", doc.GrandTotal},
	)

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write order csv: %w", err)
	}
	return nil
}
