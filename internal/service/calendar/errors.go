package calendar

import (
	"errors"

	"github.com/m04kA/SMC-CalendarService/pkg/cellref"
)

var (
	// ErrInvalidReference возвращается, когда адрес стартовой ячейки некорректен
	ErrInvalidReference = cellref.ErrInvalidReference

	// ErrStartDateUnresolved возвращается, когда не удалось определить дату начала календаря
	ErrStartDateUnresolved = errors.New("calendar: start date unresolved")

	// ErrHeaderNotFound возвращается, когда не найдена строка заголовка с датами
	ErrHeaderNotFound = errors.New("calendar: date header not found")

	// ErrEmptyDateRange возвращается, когда дата выезда не позже даты заезда
	ErrEmptyDateRange = errors.New("calendar: empty date range")

	// ErrRoomNotFound возвращается, когда номер отсутствует в календаре
	ErrRoomNotFound = errors.New("calendar: room not found")

	// ErrDateNotInCalendar возвращается, когда дата отсутствует в календаре
	ErrDateNotInCalendar = errors.New("calendar: date not in calendar")

	// ErrNoCalendarLoaded возвращается, когда календарь ещё не загружен
	ErrNoCalendarLoaded = errors.New("calendar: no calendar loaded")

	// ErrSourceUnavailable возвращается, когда источник таблицы недоступен
	ErrSourceUnavailable = errors.New("calendar: source unavailable")
)
