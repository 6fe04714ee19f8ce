package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/idilsaglam/schoolmeal/internal/meal"
	"github.com/idilsaglam/schoolmeal/internal/neis"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&meal.NotFoundError{Date: "20240316"}, MsgNotFound},
		{fmt.Errorf("lookup: %w", &meal.NotFoundError{}), MsgNotFound},
		{&meal.InvalidDateError{Input: "abc"}, MsgBadDate},
		{&meal.InvalidDateError{Input: " "}, MsgNoDate},
		{&neis.TransportError{Status: 500}, MsgFailed},
		{errors.New("something else"), MsgFailed},
	}
	for _, c := range cases {
		if got := Message(c.err); got != c.want {
			t.Errorf("Message(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestThemeMeal(t *testing.T) {
	v := meal.View{
		Header: "2024년 03월 15일 (금) 급식 정보",
		Menu:   []string{"쌀밥", "김치찌개"},
		Nutrition: []meal.NutritionPair{
			{Label: meal.CalorieLabel, Value: "812.3 Kcal"},
			{Label: "단백질(g)", Value: "30.5"},
		},
	}
	for _, name := range []string{"classic", "neon", "mono", "unknown"} {
		var buf bytes.Buffer
		th := NewTheme(name, &buf)
		th.PrintMeal(&buf, v)
		out := buf.String()
		for _, want := range []string{v.Header, "쌀밥", "김치찌개", "812.3 Kcal", "단백질(g)", "30.5"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: output missing %q:\n%s", name, want, out)
			}
		}
	}
}

func TestThemeMealEmptyMenu(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme("mono", &buf)
	out := th.Meal(meal.View{Header: "h", MenuEmpty: true, Nutrition: []meal.NutritionPair{{Label: meal.CalorieLabel, Value: meal.NoCalorie}}})
	if !strings.Contains(out, meal.EmptyMenu) || !strings.Contains(out, meal.NoCalorie) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestMonoPanelIsASCII(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme("mono", &buf)
	th.Fail(&buf, "boom")
	out := th.Panel("x")
	if !strings.HasPrefix(out, "+") || strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("mono output not plain: %q %q", out, buf.String())
	}
	if th.Name != "mono" || NewTheme("weird", &buf).Name != "classic" {
		t.Fatal("theme fallback broken")
	}
}
