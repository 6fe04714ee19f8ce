package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/schoolmeal/internal/meal"
	"github.com/idilsaglam/schoolmeal/internal/ui"
)

// fake client for tests
type fakeClient struct {
	data    meal.Data
	err     error
	queries []meal.Query
}

func (f *fakeClient) Lookup(ctx context.Context, q meal.Query) (meal.Data, error) {
	f.queries = append(f.queries, q)
	return f.data, f.err
}

func fixedNow() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }

func newModel(f *fakeClient, date string) Model {
	return New(f, Options{
		SchoolCode: "7530079",
		OfficeCode: "J10",
		Theme:      ui.NewTheme("mono", &bytes.Buffer{}),
		Date:       date,
		Now:        fixedNow,
	})
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestDefaultsToToday(t *testing.T) {
	m := newModel(&fakeClient{}, "")
	if got := m.input.Value(); got != "2024-03-15" {
		t.Fatalf("input = %q", got)
	}
}

func TestSearchShowsMeal(t *testing.T) {
	f := &fakeClient{data: meal.Data{
		Menu:      []string{"쌀밥", "김치찌개(5.6.9)"},
		Calorie:   "812.3 Kcal",
		Nutrition: []string{"단백질(g) : 30.5"},
	}}
	m := newModel(f, "2024-03-15")

	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil || m.state != loading {
		t.Fatalf("expected loading with a command, state=%v", m.state)
	}

	// a second search while pending is ignored
	m, cmd = press(m, tea.KeyEnter)
	if cmd != nil {
		t.Fatal("search accepted while loading")
	}

	q, _ := meal.NewQuery("7530079", "J10", "2024-03-15")
	next, _ := m.Update(m.lookup(q)())
	m = next.(Model)
	if m.state != showing {
		t.Fatalf("state = %v, err = %q", m.state, m.errMsg)
	}
	out := m.View()
	for _, want := range []string{"2024년 03월 15일 (금) 급식 정보", "김치찌개", "812.3 Kcal", "30.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(5.6.9)") {
		t.Error("allergen codes not stripped")
	}
	if len(f.queries) != 1 || f.queries[0].Date != "20240315" {
		t.Fatalf("queries = %+v", f.queries)
	}
}

func TestLookupNotFound(t *testing.T) {
	f := &fakeClient{err: &meal.NotFoundError{Date: "20240316"}}
	m := newModel(f, "2024-03-16")
	q, _ := meal.NewQuery("7530079", "J10", "2024-03-16")
	next, _ := m.Update(m.lookup(q)())
	m = next.(Model)
	if m.state != failed || m.errMsg != ui.MsgNotFound {
		t.Fatalf("state=%v msg=%q", m.state, m.errMsg)
	}
	if !strings.Contains(m.View(), ui.MsgNotFound) {
		t.Fatal("error not rendered")
	}
}

func TestSearchValidatesInput(t *testing.T) {
	m := newModel(&fakeClient{}, "2024-99-99")
	m, cmd := press(m, tea.KeyEnter)
	if cmd != nil || m.state != failed || m.errMsg != ui.MsgBadDate {
		t.Fatalf("state=%v msg=%q", m.state, m.errMsg)
	}

	m.input.SetValue("")
	m, cmd = press(m, tea.KeyEnter)
	if cmd != nil || m.errMsg != ui.MsgNoDate {
		t.Fatalf("msg=%q", m.errMsg)
	}
}

func TestStepDays(t *testing.T) {
	m := newModel(&fakeClient{}, "2024-02-28")
	m, cmd := press(m, tea.KeyCtrlN)
	if cmd == nil || m.input.Value() != "2024-02-29" {
		t.Fatalf("next: %q", m.input.Value())
	}

	m.state = idle
	m, _ = press(m, tea.KeyCtrlP)
	if m.input.Value() != "2024-02-28" {
		t.Fatalf("prev: %q", m.input.Value())
	}

	m.state = idle
	m, _ = press(m, tea.KeyCtrlT)
	if m.input.Value() != "2024-03-15" {
		t.Fatalf("today: %q", m.input.Value())
	}
}

func TestQuit(t *testing.T) {
	m := newModel(&fakeClient{}, "")
	_, cmd := press(m, tea.KeyEsc)
	if cmd == nil {
		t.Fatal("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc did not quit")
	}
}
