package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/schoolmeal/internal/meal"
	"github.com/idilsaglam/schoolmeal/internal/neis"
)

// Messages shown for failed lookups.
const (
	MsgNoDate   = "날짜를 선택해주세요."
	MsgNotFound = "해당 날짜의 급식 정보가 없습니다."
	MsgBadDate  = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)."
	MsgFailed   = "데이터를 가져오는데 실패했습니다."
)

// Message maps a lookup error to the line shown to the user.
func Message(err error) string {
	var nf *meal.NotFoundError
	var ide *meal.InvalidDateError
	var te *neis.TransportError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &nf):
		return MsgNotFound
	case errors.As(err, &ide):
		if strings.TrimSpace(ide.Input) == "" {
			return MsgNoDate
		}
		return MsgBadDate
	case errors.As(err, &te):
		return MsgFailed
	}
	return MsgFailed
}

// Meal renders the body of a meal view: menu, then nutrition rows.
func (t Theme) Meal(v meal.View) string {
	var lines []string
	lines = append(lines, t.Title.Render(v.Header), "")

	lines = append(lines, t.Accent.Render("메뉴"))
	if v.MenuEmpty {
		lines = append(lines, t.Muted.Render(meal.EmptyMenu))
	}
	for _, item := range v.Menu {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(t.Bullet), item))
	}
	lines = append(lines, "")

	lines = append(lines, t.Accent.Render("영양 정보"))
	width := 0
	for _, p := range v.Nutrition {
		if w := lipgloss.Width(p.Label); w > width {
			width = w
		}
	}
	for _, p := range v.Nutrition {
		pad := strings.Repeat(" ", width-lipgloss.Width(p.Label))
		lines = append(lines, fmt.Sprintf("%s%s  %s", t.Label.Render(p.Label), pad, t.Value.Render(p.Value)))
	}
	return strings.Join(lines, "\n")
}

// Panel frames content with the theme border.
func (t Theme) Panel(content string) string {
	return t.Frame.Render(content)
}

// PrintMeal writes the framed meal view to w.
func (t Theme) PrintMeal(w io.Writer, v meal.View) {
	fmt.Fprintln(w, t.Panel(t.Meal(v)))
}

func (t Theme) OK(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func (t Theme) Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}
