package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// weekdayTokens сокращения дней недели, которые встречаются в строке заголовка
var weekdayTokens = map[string]struct{}{
	"пн": {}, "вт": {}, "ср": {}, "чт": {}, "пт": {}, "сб": {}, "вс": {},
	"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {},
	"mo": {}, "tu": {}, "we": {}, "th": {}, "fr": {}, "sa": {}, "su": {},
}

var monthNames = map[string]time.Month{
	"январь": time.January, "января": time.January, "янв": time.January,
	"февраль": time.February, "февраля": time.February, "фев": time.February,
	"март": time.March, "марта": time.March, "мар": time.March,
	"апрель": time.April, "апреля": time.April, "апр": time.April,
	"май": time.May, "мая": time.May,
	"июнь": time.June, "июня": time.June, "июн": time.June,
	"июль": time.July, "июля": time.July, "июл": time.July,
	"август": time.August, "августа": time.August, "авг": time.August,
	"сентябрь": time.September, "сентября": time.September, "сен": time.September,
	"октябрь": time.October, "октября": time.October, "окт": time.October,
	"ноябрь": time.November, "ноября": time.November, "ноя": time.November,
	"декабрь": time.December, "декабря": time.December, "дек": time.December,

	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// dayNumberPattern номер дня в начале ячейки: "24", "24 пн", "24.11"
var dayNumberPattern = regexp.MustCompile(`^(\d{1,2})(?:\D.*)?$`)

func normalizeToken(s string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(s)), ".,")
}

// isWeekdayToken проверяет, что ячейка содержит только сокращение дня недели
func isWeekdayToken(cell string) bool {
	_, ok := weekdayTokens[normalizeToken(cell)]
	return ok
}

// parseMonthCell распознаёт ячейку с названием месяца и, если есть, годом ("Ноябрь 2025", "1 января").
// Ячейка принимается, только если все её слова - месяц, год или номер дня,
// поэтому свободный текст ("Guests may check in after 14:00") месяцем не считается.
// year = 0, если год в ячейке не указан.
func parseMonthCell(cell string) (month time.Month, year int, ok bool) {
	for _, field := range strings.Fields(strings.ToLower(cell)) {
		field = strings.Trim(field, ".,'\"-–/|")
		if field == "" {
			continue
		}
		if m, found := monthNames[field]; found {
			if !ok {
				month, ok = m, true
			}
			continue
		}
		number, err := strconv.Atoi(field)
		switch {
		case err != nil:
			return 0, 0, false
		case len(field) == 4 && number >= 1900 && number <= 2200:
			year = number
		case number < 1 || number > 31:
			return 0, 0, false
		}
	}
	if !ok {
		return 0, 0, false
	}
	return month, year, true
}

// parseDayNumber возвращает номер дня месяца (1-31) из ячейки заголовка
func parseDayNumber(cell string) (int, bool) {
	match := dayNumberPattern.FindStringSubmatch(strings.TrimSpace(cell))
	if match == nil {
		return 0, false
	}
	day, err := strconv.Atoi(match[1])
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}
