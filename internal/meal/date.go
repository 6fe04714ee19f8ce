package meal

import "fmt"

var weekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatDisplayDate turns "2024-03-15" into "2024년 03월 15일 (금)".
func FormatDisplayDate(isoDate string) (string, error) {
	t, err := parseISO(isoDate)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d년 %02d월 %02d일 (%s)",
		t.Year(), int(t.Month()), t.Day(), weekdays[t.Weekday()]), nil
}
