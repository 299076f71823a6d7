package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

func TestCSVFile_Sync(t *testing.T) {
	path := writeExport(t, `id,date,pair,side,unit_price,unit_size,fee
ord-1,2023-01-01T00:00:00Z,BTC-USD,buy,100,2,1.5
ord-2,2023-02-01T00:00:00Z,BTC-USD,SELL,150,1,0.5
`)
	c := NewCSVFile(path)
	entries, err := c.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first, ok := entries[0].(*entry.CoinOrder)
	if !ok {
		t.Fatalf("expected *entry.CoinOrder, got %T", entries[0])
	}
	if first.ID != "ord-1" || first.Side != "buy" || first.UnitPrice != 100 || first.Platform != "csvfile" {
		t.Errorf("first order: %+v", first)
	}

	second := entries[1].(*entry.CoinOrder)
	if second.Side != "sell" {
		t.Errorf("side not normalized: %q", second.Side)
	}
}

func TestCSVFile_SkipsMalformedRows(t *testing.T) {
	path := writeExport(t, `date,pair,side,unit_price,unit_size
2023-01-01T00:00:00Z,BTC-USD,buy,100,2
2023-01-02T00:00:00Z,BTC-USD,hold,100,2
2023-01-03T00:00:00Z,BTC-USD,buy,not-a-number,2
2023-01-04T00:00:00Z,BTC-USD,buy,110,1
`)
	entries, err := NewCSVFile(path).Sync(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 valid entries, got %d", len(entries))
	}
	// rows without an id column get a generated one
	if entries[0].(*entry.CoinOrder).ID == "" {
		t.Error("expected generated id")
	}
}

func TestCSVFile_MissingColumnFails(t *testing.T) {
	path := writeExport(t, "date,side,unit_price,unit_size\n")
	if _, err := NewCSVFile(path).Sync(context.Background()); err == nil {
		t.Error("expected error for missing pair column")
	}
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	conn := entry.PlatformConnection{
		Nickname: "exports",
		Platform: "csvfile",
		Data:     []entry.ConnectionData{{Key: "path", Value: "/tmp/export.csv"}},
	}
	c, err := r.Resolve(conn)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if c.Name() != "csvfile" {
		t.Errorf("resolved client name: %q", c.Name())
	}
	if data := c.ConnectionData(); len(data) != 1 || data[0].Value != "/tmp/export.csv" {
		t.Errorf("connection data: %+v", data)
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Resolve(entry.PlatformConnection{Platform: "coinbase"}); err == nil {
		t.Error("expected error for unknown platform")
	}
	if err := r.Register("csvfile", newCSVFileFromConnection); err == nil {
		t.Error("expected error for duplicate registration")
	}
}
