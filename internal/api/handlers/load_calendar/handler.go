package load_calendar

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/sheets"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
	loadCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/load_calendar"
)

const (
	msgLoaded               = "календарь успешно загружен"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingSpreadsheet   = "не указан ID таблицы (spreadsheetId или SPREADSHEET_ID)"
	msgSpreadsheetNotFound  = "таблица не найдена, проверьте ID таблицы"
	msgPermissionDenied     = "нет доступа к таблице, выдайте доступ сервисному аккаунту"
	msgSheetNotFound        = "лист с указанным именем не найден"
	msgEmptySheet           = "на листе нет данных"
	msgDateStartWithoutCell = "дата начала задается вместе со стартовой ячейкой (dateStartCell)"
)

type Handler struct {
	useCase LoadCalendarUseCase
	logger  Logger
}

func NewHandler(useCase LoadCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/load
// Пустое тело - загрузка с параметрами из конфигурации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoadCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /calendar/load - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, loadCalendar.ErrMissingSpreadsheetID):
			h.logger.Warn("POST /calendar/load - Missing spreadsheet ID")
			handlers.RespondBadRequest(w, msgMissingSpreadsheet)

		case errors.Is(err, loadCalendar.ErrDateStartWithoutCell):
			h.logger.Warn("POST /calendar/load - Date start without start cell")
			handlers.RespondBadRequest(w, msgDateStartWithoutCell)

		case errors.Is(err, loadCalendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar/load - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, calendar.ErrSourceUnavailable):
			h.logger.Error("POST /calendar/load - Source unavailable: %v", err)
			handlers.RespondBadGateway(w, sourceMessage(err))

		default:
			if status, message, ok := handlers.CalendarErrorStatus(err); ok {
				h.logger.Warn("POST /calendar/load - Failed to build calendar: %v", err)
				handlers.RespondError(w, status, message)
				return
			}
			h.logger.Error("POST /calendar/load - Failed to load calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/load - Calendar loaded: spreadsheet=%s, dates=%d, rooms=%d",
		result.SpreadsheetID, result.DatesFound, result.RoomsFound)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func sourceMessage(err error) string {
	switch {
	case errors.Is(err, sheets.ErrSpreadsheetNotFound):
		return msgSpreadsheetNotFound
	case errors.Is(err, sheets.ErrPermissionDenied):
		return msgPermissionDenied
	case errors.Is(err, sheets.ErrSheetNotFound):
		return msgSheetNotFound
	case errors.Is(err, sheets.ErrEmptySheet):
		return msgEmptySheet
	default:
		_, message, _ := handlers.CalendarErrorStatus(err)
		return message
	}
}
