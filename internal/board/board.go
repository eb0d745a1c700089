package board

import (
	"sync"
	"time"

	"reportboard/client/internal/models"
)

// Board is the displayed report list, index 0 on top.
type Board struct {
	mu    sync.RWMutex
	items []ReportView
	now   func() time.Time
}

// New creates an empty board. now stamps insertions; nil means time.Now.
func New(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{now: now}
}

// Replace clears the board and inserts reports one by one at the top,
// so the last report in the slice ends up first.
func (b *Board) Replace(reports []models.Report) {
	b.mu.Lock()
	defer b.mu.Unlock()

	at := b.now()
	items := make([]ReportView, len(reports))
	for i, r := range reports {
		v := Build(r)
		v.InsertedAt = at
		items[len(reports)-1-i] = v
	}
	b.items = items
}

// Prepend puts a report on top and returns its view.
func (b *Board) Prepend(r models.Report) ReportView {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := Build(r)
	v.InsertedAt = b.now()
	b.items = append([]ReportView{v}, b.items...)
	return v
}

// SetLikes updates the count shown for id. It returns false when no view has that id.
func (b *Board) SetLikes(id models.ReportID, likes int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].setLikes(likes)
			found = true
		}
	}
	return found
}

// Find returns the top-most view with id.
func (b *Board) Find(id models.ReportID) (ReportView, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, v := range b.items {
		if v.ID == id {
			return v, true
		}
	}
	return ReportView{}, false
}

// Items returns a copy of the list, top first.
func (b *Board) Items() []ReportView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]ReportView, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of displayed reports.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}
