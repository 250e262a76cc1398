package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

const (
	msgInvalidReference    = "некорректный адрес стартовой ячейки"
	msgStartDateUnresolved = "не удалось определить дату начала календаря"
	msgHeaderNotFound      = "не найдена строка заголовка с датами"
	msgEmptyDateRange      = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound        = "номер не найден"
	msgDateNotInCalendar   = "дата отсутствует в календаре"
	msgNoCalendarLoaded    = "календарь не загружен"
	msgSourceUnavailable   = "не удалось получить данные из Google Sheets"
)

// CalendarErrorStatus сопоставляет ошибку календаря HTTP статусу и сообщению.
// Сообщение дополняется контекстом из ошибки (номер, дата, ячейка).
// ok = false, если ошибка не относится к календарю.
func CalendarErrorStatus(err error) (status int, message string, ok bool) {
	switch {
	case errors.Is(err, calendar.ErrInvalidReference):
		return http.StatusBadRequest, withDetail(msgInvalidReference, err, calendar.ErrInvalidReference), true
	case errors.Is(err, calendar.ErrStartDateUnresolved):
		return http.StatusBadRequest, withDetail(msgStartDateUnresolved, err, calendar.ErrStartDateUnresolved), true
	case errors.Is(err, calendar.ErrHeaderNotFound):
		return http.StatusBadRequest, withDetail(msgHeaderNotFound, err, calendar.ErrHeaderNotFound), true
	case errors.Is(err, calendar.ErrEmptyDateRange):
		return http.StatusBadRequest, withDetail(msgEmptyDateRange, err, calendar.ErrEmptyDateRange), true
	case errors.Is(err, calendar.ErrRoomNotFound):
		return http.StatusNotFound, withDetail(msgRoomNotFound, err, calendar.ErrRoomNotFound), true
	case errors.Is(err, calendar.ErrDateNotInCalendar):
		return http.StatusNotFound, withDetail(msgDateNotInCalendar, err, calendar.ErrDateNotInCalendar), true
	case errors.Is(err, calendar.ErrNoCalendarLoaded):
		return http.StatusNotFound, msgNoCalendarLoaded, true
	case errors.Is(err, calendar.ErrSourceUnavailable):
		// ответ провайдера наружу не отдаём, подробности только в логах
		return http.StatusBadGateway, msgSourceUnavailable, true
	default:
		return 0, "", false
	}
}

// RespondCalendarError отправляет ответ для ошибки календаря, остальные ошибки - 500
func RespondCalendarError(w http.ResponseWriter, err error) {
	if status, message, ok := CalendarErrorStatus(err); ok {
		RespondError(w, status, message)
		return
	}
	RespondInternalError(w)
}

// withDetail берёт из текста ошибки всё, что дописано после sentinel
func withDetail(message string, err, sentinel error) string {
	text := err.Error()
	idx := strings.Index(text, sentinel.Error())
	if idx < 0 {
		return message
	}
	detail := strings.TrimSpace(strings.TrimPrefix(text[idx+len(sentinel.Error()):], ":"))
	if detail == "" {
		return message
	}
	return message + ": " + detail
}
