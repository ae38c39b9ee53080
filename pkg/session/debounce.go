package session

import (
	"time"

	"github.com/bep/debounce"
)

// saveTimer is the pending auto-save. Scheduling replaces whatever was
// pending; only the most recent save runs.
type saveTimer struct {
	debounced func(f func())
}

func newSaveTimer(delay time.Duration) *saveTimer {
	return &saveTimer{debounced: debounce.New(delay)}
}

func (t *saveTimer) Schedule(f func()) {
	t.debounced(f)
}

// Cancel drops the pending save.
func (t *saveTimer) Cancel() {
	t.debounced(func() {})
}
