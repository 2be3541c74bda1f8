package format

import (
	"context"
	"sync"
	"time"

	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/storage"

	"go.uber.org/zap"
)

// Memo remembers formats discovered for a domain. Implementations must be
// safe for concurrent use; concurrent writers for the same domain race and
// the last one wins.
type Memo interface {
	Get(ctx context.Context, domainName string) ([]domain.EmailFormat, bool)
	Put(ctx context.Context, domainName string, formats []domain.EmailFormat)
}

// MemoryMemo is a process local Memo.
type MemoryMemo struct {
	mu      sync.RWMutex
	entries map[string][]domain.EmailFormat
}

var _ Memo = (*MemoryMemo)(nil)

// NewMemoryMemo creates an empty MemoryMemo.
func NewMemoryMemo() *MemoryMemo {
	return &MemoryMemo{entries: make(map[string][]domain.EmailFormat)}
}

func (m *MemoryMemo) Get(_ context.Context, domainName string) ([]domain.EmailFormat, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	formats, ok := m.entries[domainName]
	if !ok {
		return nil, false
	}

	return append([]domain.EmailFormat(nil), formats...), true
}

func (m *MemoryMemo) Put(_ context.Context, domainName string, formats []domain.EmailFormat) {
	if len(formats) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[domainName] = append([]domain.EmailFormat(nil), formats...)
}

// StoreMemo is a read-through Memo that keeps a MemoryMemo in front of a
// FormatStorage. Storage failures are logged and degrade to the in-memory
// behaviour.
type StoreMemo struct {
	local   *MemoryMemo
	storage storage.FormatStorage
	now     func() time.Time
}

var _ Memo = (*StoreMemo)(nil)

// NewStoreMemo creates a StoreMemo over s.
func NewStoreMemo(s storage.FormatStorage) *StoreMemo {
	return &StoreMemo{local: NewMemoryMemo(), storage: s, now: time.Now}
}

func (m *StoreMemo) Get(ctx context.Context, domainName string) ([]domain.EmailFormat, bool) {
	if formats, ok := m.local.Get(ctx, domainName); ok {
		return formats, true
	}

	stored, err := m.storage.DomainFormat(ctx, domainName)
	if err != nil {
		logger.Warn(ctx, "could not read remembered formats", zap.String("domain", domainName), zap.Error(err))

		return nil, false
	}
	if stored == nil || len(stored.Formats) == 0 {
		return nil, false
	}

	m.local.Put(ctx, domainName, stored.Formats)

	return append([]domain.EmailFormat(nil), stored.Formats...), true
}

func (m *StoreMemo) Put(ctx context.Context, domainName string, formats []domain.EmailFormat) {
	if len(formats) == 0 {
		return
	}

	m.local.Put(ctx, domainName, formats)

	if err := m.storage.StoreDomainFormat(ctx, domain.DomainFormat{
		Domain:    domainName,
		Formats:   formats,
		Source:    "search",
		UpdatedAt: m.now(),
	}); err != nil {
		logger.Warn(ctx, "could not remember formats", zap.String("domain", domainName), zap.Error(err))
	}
}
