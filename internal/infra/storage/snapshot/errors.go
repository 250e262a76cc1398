package snapshot

import "errors"

var (
	// ErrSnapshotNotFound возвращается, когда календарь ещё не загружался
	ErrSnapshotNotFound = errors.New("snapshot.storage: snapshot not found")
)
