package platform

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
)

const csvfileName = "csvfile"

// CSVFile syncs order history from a local exchange-export CSV. The file
// needs a header row with at least date, pair, side, unit_price and
// unit_size columns; fee and id are optional. Malformed rows are skipped
// individually rather than failing the whole file.
type CSVFile struct {
	path string
}

// NewCSVFile creates a client reading the given export file.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

func newCSVFileFromConnection(conn entry.PlatformConnection) (Client, error) {
	for _, d := range conn.Data {
		if d.Key == "path" {
			return NewCSVFile(d.Value), nil
		}
	}
	return nil, fmt.Errorf("csvfile connection %q missing path", conn.Nickname)
}

func (c *CSVFile) Name() string { return csvfileName }

func (c *CSVFile) ConnectionData() []entry.ConnectionData {
	return []entry.ConnectionData{{Key: "path", Value: c.path}}
}

// Sync reads the export file and returns one CoinOrder per valid row.
func (c *CSVFile) Sync(ctx context.Context) ([]entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "pair", "side", "unit_price", "unit_size"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("export file missing %q column", required)
		}
	}

	var entries []entry.Entry
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("[WARN] csvfile %s line %d: %v, skipping", c.path, line, err)
			continue
		}
		order, err := c.parseRow(cols, row)
		if err != nil {
			log.Printf("[WARN] csvfile %s line %d: %v, skipping", c.path, line, err)
			continue
		}
		entries = append(entries, order)
	}
	return entries, nil
}

func (c *CSVFile) parseRow(cols map[string]int, row []string) (*entry.CoinOrder, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	side := strings.ToLower(field("side"))
	if side != "buy" && side != "sell" {
		return nil, fmt.Errorf("bad side %q", field("side"))
	}
	price, err := strconv.ParseFloat(field("unit_price"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad unit_price %q", field("unit_price"))
	}
	size, err := strconv.ParseFloat(field("unit_size"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad unit_size %q", field("unit_size"))
	}
	fee := 0.0
	if v := field("fee"); v != "" {
		if fee, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("bad fee %q", v)
		}
	}

	id := field("id")
	if id == "" {
		id = entry.NewID()
	}

	return &entry.CoinOrder{
		ID:        id,
		Date:      field("date"),
		Pair:      field("pair"),
		UnitPrice: price,
		UnitSize:  size,
		Fee:       fee,
		Side:      side,
		Platform:  csvfileName,
	}, nil
}
