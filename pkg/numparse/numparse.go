// Package numparse содержит лениентные парсеры числовых полей форм.
//
// Цены услуг приходят из мобильной формы строками; авторитетный пересчёт
// суммы выполняет удалённый сервис, поэтому нераспознанная строка намеренно
// превращается в 0, а не в ошибку валидации.
package numparse

import (
	"strconv"
	"strings"
)

// FloatOrZero парсит строку как float64, возвращая 0 для пустых
// и нераспознаваемых значений. Запятая принимается как десятичный
// разделитель.
func FloatOrZero(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	trimmed = strings.ReplaceAll(trimmed, ",", ".")
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return v
}

// IntOrZero парсит строку как int64, возвращая 0 для пустых
// и нераспознаваемых значений
func IntOrZero(s string) int64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
