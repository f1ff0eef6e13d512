package state

import (
	"sync"
	"time"
)

const saveDebounce = 500 * time.Millisecond

// lastSearchWriter holds back last-search writes until saves stop for
// saveDebounce, so flipping through categories costs one write.
type lastSearchWriter struct {
	write func(LastSearch) error

	mu      sync.Mutex
	timer   *time.Timer
	pending *LastSearch
}

func (w *lastSearchWriter) save(s LastSearch) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = &s
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(saveDebounce, func() { _ = w.flush() })
}

// flush writes the pending search now, if any.
func (w *lastSearchWriter) flush() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if pending == nil {
		return nil
	}
	return w.write(*pending)
}
