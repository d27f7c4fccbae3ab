package memory

import (
	"sync"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// MessageLog is the in-memory audit trail of outbound notifications.
type MessageLog struct {
	mu    sync.RWMutex
	items []domain.MessageRecord
}

func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

func (l *MessageLog) Append(rec domain.MessageRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, rec)
}

func (l *MessageLog) Snapshot() []domain.MessageRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.MessageRecord, len(l.items))
	copy(out, l.items)
	return out
}

func (l *MessageLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
