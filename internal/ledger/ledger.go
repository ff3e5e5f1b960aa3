package ledger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathsprint/internal/config"
	"github.com/vovakirdan/mathsprint/internal/core"
)

// Ledger is the bounded, score-ordered list of best sessions.
type Ledger struct {
	store       Store
	capacity    int
	nameMax     int
	defaultName string
	clock       core.Clock
	logger      *log.Logger
}

// New creates a ledger over store. A nil clock reads the system clock and
// a nil logger discards output.
func New(store Store, cfg config.LedgerConfig, clock core.Clock, logger *log.Logger) *Ledger {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 5
	}
	if cfg.NameMaxLength < 1 {
		cfg.NameMaxLength = 15
	}
	if cfg.DefaultName == "" {
		cfg.DefaultName = "Player"
	}
	return &Ledger{
		store:       store,
		capacity:    cfg.Capacity,
		nameMax:     cfg.NameMaxLength,
		defaultName: cfg.DefaultName,
		clock:       clock,
		logger:      logger,
	}
}

// Capacity returns the maximum number of kept entries.
func (l *Ledger) Capacity() int {
	return l.capacity
}

// Load returns at most Capacity stored entries with positive scores, best
// first. Missing or unreadable data is logged and reported as an empty ledger.
func (l *Ledger) Load() []Entry {
	entries, err := l.store.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no ledger yet", "err", err)
		} else {
			l.logger.Warn("ignoring unreadable ledger", "err", err)
		}
		return []Entry{}
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Score <= 0 {
			l.logger.Warn("dropping non-positive ledger entry", "name", e.Name, "score", e.Score)
			continue
		}
		kept = append(kept, e)
	}
	sortEntries(kept)
	if len(kept) > l.capacity {
		kept = kept[:l.capacity]
	}
	return kept
}

// Qualifies reports whether score would currently earn a place.
func (l *Ledger) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	entries := l.Load()
	if len(entries) < l.capacity {
		return true
	}
	return score > entries[l.capacity-1].Score
}

// RecordIfEligible adds a positive score under name, dated today, and
// writes back the best entries. Non-positive scores are ignored. A blank
// name becomes the default name; long names are truncated.
func (l *Ledger) RecordIfEligible(name string, score int) ([]Entry, error) {
	if score <= 0 {
		return l.Load(), nil
	}

	entries := l.Load()
	entries = append(entries, Entry{
		Name:  l.normalizeName(name),
		Score: score,
		Date:  l.clock.Now().Format(DateLayout),
	})
	sortEntries(entries)
	if len(entries) > l.capacity {
		entries = entries[:l.capacity]
	}

	if err := l.store.Write(entries); err != nil {
		l.logger.Error("cannot save score", "name", name, "score", score, "err", err)
		return entries, fmt.Errorf("ledger: record: %w", err)
	}
	l.logger.Info("score recorded", "score", score, "entries", len(entries))
	return entries, nil
}

// Clear empties the ledger.
func (l *Ledger) Clear() error {
	if err := l.store.Write([]Entry{}); err != nil {
		return fmt.Errorf("ledger: clear: %w", err)
	}
	return nil
}

func (l *Ledger) normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return l.defaultName
	}
	if runes := []rune(name); len(runes) > l.nameMax {
		name = string(runes[:l.nameMax])
	}
	return name
}
