package leaderboard

import (
	"fmt"
	"sort"
)

// HistoryItem is one task of a user's completion history.
type HistoryItem struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// String renders the item for display.
func (h HistoryItem) String() string {
	return FormatHistoryItem(h.Text, h.Count)
}

// History lists the entry's histogram, most completed first, then by text.
func (e Entry) History() []HistoryItem {
	items := make([]HistoryItem, 0, len(e.Histogram))
	for text, count := range e.Histogram {
		items = append(items, HistoryItem{Text: text, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Text < items[j].Text
	})
	return items
}

// FormatHistoryItem renders text with a repeat marker when it was completed
// more than once.
func FormatHistoryItem(text string, count int) string {
	if count > 1 {
		return fmt.Sprintf("%s (x%d)", text, count)
	}
	return text
}
