package meal

import (
	"fmt"
	"strings"
	"time"
)

// Sentinels shown in place of missing data.
const (
	NoCalorie = "정보 없음"
	NoValue   = "-"
)

const isoLayout = "2006-01-02"

// Query identifies one school's meal record for one day.
// Date is the 8-digit YYYYMMDD form the API expects.
type Query struct {
	SchoolCode string
	OfficeCode string
	Date       string
}

// NewQuery validates an ISO date (YYYY-MM-DD) and builds the query for it.
func NewQuery(schoolCode, officeCode, isoDate string) (Query, error) {
	isoDate = strings.TrimSpace(isoDate)
	if _, err := parseISO(isoDate); err != nil {
		return Query{}, err
	}
	return Query{
		SchoolCode: schoolCode,
		OfficeCode: officeCode,
		Date:       strings.ReplaceAll(isoDate, "-", ""),
	}, nil
}

// ISODate returns the query date back in YYYY-MM-DD form.
func (q Query) ISODate() string {
	if len(q.Date) != 8 {
		return q.Date
	}
	return q.Date[:4] + "-" + q.Date[4:6] + "-" + q.Date[6:]
}

// Data is what one record yields once its fields are split up.
type Data struct {
	Menu      []string `json:"menu"`
	Calorie   string   `json:"calorie"`
	Nutrition []string `json:"nutrition"`
}

// NutritionPair is one "label:value" nutrition entry.
type NutritionPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NotFoundError reports that the API returned no record for the date.
// Code and Message carry the API's RESULT block when there was one.
type NotFoundError struct {
	Date    string
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("no meal data for %s (%s: %s)", e.Date, e.Code, e.Message)
	}
	return fmt.Sprintf("no meal data for %s", e.Date)
}

// InvalidDateError reports input that is not a YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Input string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: want YYYY-MM-DD", e.Input)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

func parseISO(s string) (time.Time, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: s, Err: err}
	}
	return t, nil
}
