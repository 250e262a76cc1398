package snapshot

import (
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

// Entry загруженный снимок календаря и сведения об источнике
type Entry struct {
	Snapshot      *calendar.Snapshot
	SpreadsheetID string
	SheetName     string
	LoadedAt      time.Time
}

// Store хранит текущий снимок календаря в памяти.
// Новый снимок целиком строится вне хранилища и подменяется атомарно:
// читатели видят либо старый, либо новый снимок, но никогда не промежуточное состояние.
type Store struct {
	current atomic.Pointer[Entry]
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{}
}

// Get возвращает текущий снимок
func (s *Store) Get() (*Entry, error) {
	entry := s.current.Load()
	if entry == nil {
		return nil, ErrSnapshotNotFound
	}
	return entry, nil
}

// Replace подменяет текущий снимок новым и возвращает предыдущий (nil, если его не было)
func (s *Store) Replace(entry *Entry) *Entry {
	return s.current.Swap(entry)
}

// Loaded проверяет, загружен ли календарь
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}
