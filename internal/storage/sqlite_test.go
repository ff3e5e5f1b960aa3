package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/mathsprint/internal/config"
	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/ledger"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreEmptyRead(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entries, err := store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty ledger, got %d entries", len(entries))
	}
}

func TestStoreWriteReplacesLedger(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	first := []ledger.Entry{
		{Name: "A", Score: 50, Date: "2026-05-01"},
		{Name: "B", Score: 30, Date: "2026-05-02"},
		{Name: "C", Score: 10, Date: "2026-05-03"},
	}
	if err := store.Write(first); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	second := []ledger.Entry{
		{Name: "D", Score: 70, Date: "2026-05-04"},
		{Name: "A", Score: 50, Date: "2026-05-01"},
	}
	if err := store.Write(second); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(got) != len(second) {
		t.Fatalf("Expected %d entries, got %d", len(second), len(got))
	}
	for i := range second {
		if got[i] != second[i] {
			t.Errorf("Entry %d = %+v, want %+v", i, got[i], second[i])
		}
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Write([]ledger.Entry{{Name: "Ana", Score: 40, Date: "2026-05-17"}}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ana" || got[0].Score != 40 {
		t.Errorf("Unexpected entries after reopen: %+v", got)
	}
}

func TestStoreBacksLedger(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	clock := core.NewFakeClock(time.Date(2026, 5, 17, 9, 0, 0, 0, time.UTC))
	l := ledger.New(store, config.Default().Ledger, clock, nil)

	scores := []int{50, 30, 40, 0, 20, 60, 10}
	for i, s := range scores {
		if _, err := l.RecordIfEligible(string(rune('A'+i)), s); err != nil {
			t.Fatalf("RecordIfEligible(%d) failed: %v", s, err)
		}
	}

	got := l.Load()
	want := []int{60, 50, 40, 30, 20}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i, s := range want {
		if got[i].Score != s {
			t.Errorf("Entry %d score = %d, want %d", i, got[i].Score, s)
		}
	}

	if err := l.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if got := l.Load(); len(got) != 0 {
		t.Errorf("Expected empty ledger after Clear, got %d", len(got))
	}
}
