package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

func buildSnapshot(t *testing.T, startDate string) *calendar.Snapshot {
	t.Helper()
	grid := domain.Grid{
		{"", "", "x", "x", "x"},
		{"Std", "101"},
	}
	s, err := calendar.Build(grid, calendar.ManualConfig{StartCell: "C1", StartDate: startDate})
	require.NoError(t, err)
	return s
}

func TestStore_Empty(t *testing.T) {
	s := NewStore()

	_, err := s.Get()
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.False(t, s.Loaded())
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	first := &Entry{Snapshot: buildSnapshot(t, "2025-01-01"), SpreadsheetID: "sheet-1", LoadedAt: time.Now()}
	second := &Entry{Snapshot: buildSnapshot(t, "2025-02-01"), SpreadsheetID: "sheet-2", LoadedAt: time.Now()}

	assert.Nil(t, s.Replace(first))
	assert.True(t, s.Loaded())

	previous := s.Replace(second)
	assert.Same(t, first, previous)

	got, err := s.Get()
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	s := NewStore()
	entries := []*Entry{
		{Snapshot: buildSnapshot(t, "2025-01-01"), SpreadsheetID: "a"},
		{Snapshot: buildSnapshot(t, "2025-02-01"), SpreadsheetID: "b"},
	}
	s.Replace(entries[0])

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				entry, err := s.Get()
				if !assert.NoError(t, err) {
					return
				}
				start := entry.Snapshot.DateRange().Min
				switch entry.SpreadsheetID {
				case "a":
					assert.Equal(t, time.January, start.Month())
				case "b":
					assert.Equal(t, time.February, start.Month())
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		s.Replace(entries[j%2])
	}
	wg.Wait()
}
