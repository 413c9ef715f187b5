package picker

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sampleItems() []Item {
	return []Item{
		{Name: "react", Detail: "^18.0.0"},
		{Name: "react-dom", Detail: "^18.0.0"},
		{Name: "vitest", Detail: "^1.2.0 (dev)"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m pickerModel, keys ...string) pickerModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(pickerModel)
	}
	return m
}

// TestVisibleAllWithoutFilter verifies every item shows when the filter
// is empty.
func TestVisibleAllWithoutFilter(t *testing.T) {
	m := newModel("remove packages", sampleItems())
	if got := m.visible(); len(got) != 3 {
		t.Errorf("visible() = %v, want 3 entries", got)
	}
}

// TestFilterNarrowsVisible verifies typing filters by substring,
// case-insensitively.
func TestFilterNarrowsVisible(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), "R", "e", "a")
	vis := m.visible()
	if len(vis) != 2 || vis[0] != 0 || vis[1] != 1 {
		t.Errorf("visible() after typing 'Rea' = %v, want [0 1]", vis)
	}
}

// TestSpaceTogglesCursorItem verifies space checks and unchecks the item
// under the cursor.
func TestSpaceTogglesCursorItem(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), " ")
	if !m.items[0].checked {
		t.Error("first item not checked after space")
	}
	m = press(m, " ")
	if m.items[0].checked {
		t.Error("first item still checked after second space")
	}
}

// TestToggleRespectsFilter verifies the cursor addresses the filtered
// view, not the raw item slice.
func TestToggleRespectsFilter(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), "v", "i", " ")
	if !m.items[2].checked {
		t.Error("vitest not checked after filtering and toggling")
	}
	if m.items[0].checked || m.items[1].checked {
		t.Error("hidden items were toggled")
	}
}

// TestCursorMovesAndClamps verifies navigation stays inside the visible
// range.
func TestCursorMovesAndClamps(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), "down", "down", "down", "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	m = press(m, "up", "up", "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

// TestSelectedReturnsCheckedNames verifies confirmed names come back in
// item order.
func TestSelectedReturnsCheckedNames(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), " ", "down", "down", " ")
	want := []string{"react", "vitest"}
	if got := m.selected(); !reflect.DeepEqual(got, want) {
		t.Errorf("selected() = %v, want %v", got, want)
	}
}

// TestEscCancels verifies esc marks the model cancelled.
func TestEscCancels(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), "esc")
	if !m.cancelled {
		t.Error("model not cancelled after esc")
	}
}

// TestEnterConfirms verifies enter marks the model confirmed.
func TestEnterConfirms(t *testing.T) {
	m := press(newModel("remove packages", sampleItems()), " ", "enter")
	if !m.confirmed {
		t.Error("model not confirmed after enter")
	}
}
