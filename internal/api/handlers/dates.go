package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ParseDateField разбирает обязательную дату YYYY-MM-DD из поля запроса
func ParseDateField(name, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return date, nil
}

// NormalizeCategoryFilter пустое значение или ALL (в любом регистре) означает "без фильтра"
func NormalizeCategoryFilter(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, domain.CategoryFilterAll) {
		return ""
	}
	return category
}
