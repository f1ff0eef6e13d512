package state

import (
	"strings"
	"time"
)

// Mock keeps state in memory for tests of the TUI.
type Mock struct {
	last    *LastSearch
	history []HistoryEntry
}

// NewMock returns an empty Mock.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveLastSearch(ls LastSearch) { m.last = &ls }

func (m *Mock) GetLastSearch() (*LastSearch, error) {
	return m.last, nil
}

func (m *Mock) AddHistory(query, category string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	for i, e := range m.history {
		if strings.EqualFold(e.Query, query) {
			m.history = append(m.history[:i], m.history[i+1:]...)
			break
		}
	}
	entry := HistoryEntry{Query: query, Category: category, SearchedAt: time.Now()}
	m.history = append([]HistoryEntry{entry}, m.history...)
	return nil
}

func (m *Mock) History(limit int) ([]HistoryEntry, error) {
	if limit > 0 && limit < len(m.history) {
		return m.history[:limit], nil
	}
	return m.history, nil
}

func (m *Mock) ClearHistory() error {
	m.history = nil
	return nil
}

func (m *Mock) Close() error { return nil }

// SetLastSearch seeds the search restored at startup.
func (m *Mock) SetLastSearch(ls *LastSearch) { m.last = ls }

var _ Interface = (*Mock)(nil)
