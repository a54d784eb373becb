package changelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/ports"
)

const fileMode = 0o600

// Log is a JSONL append-only change log: one JSON object per line. The file
// is shared across all sessions; the mutex plus single-write appends keep
// concurrent entries from interleaving.
type Log struct {
	path string
	mu   sync.Mutex
}

var _ ports.ChangeLog = (*Log)(nil)

func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Append(entry domain.ChangeEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal change entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("open change log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append change entry: %w", err)
	}
	return nil
}

// Recent reads the whole file and returns the last limit entries in append
// order. Malformed lines are skipped. A missing file means no entries yet.
func (l *Log) Recent(limit int) ([]domain.ChangeEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open change log: %w", err)
	}
	defer f.Close()

	var entries []domain.ChangeEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry domain.ChangeEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read change log: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}
