package load_calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/sheets"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
	loadCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type fakeUseCase struct {
	req *loadCalendar.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *loadCalendar.Request) (*loadCalendar.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &loadCalendar.Response{
		Mode:          domain.HeaderModeManual,
		SpreadsheetID: "sheet-1",
		HeaderRow:     7,
		DataStartRow:  8,
		DatesFound:    3,
		RoomsFound:    2,
		DateRange: domain.DateRange{
			Min: domain.NewDate(2025, time.November, 24),
			Max: domain.NewDate(2025, time.November, 26),
		},
		LoadedAt: time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC),
	}, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/calendar/load",
		strings.NewReader(`{"spreadsheetId":"sheet-1","dateStartCell":"C7","refresh":true}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "C7", uc.req.DateStartCell)
	assert.True(t, uc.req.Refresh)

	var resp LoadCalendarResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.DatesFound)
	assert.Equal(t, 2, resp.RoomsFound)
	assert.Equal(t, "2025-11-24", resp.DateRange.Min)
	assert.Equal(t, "2025-11-26", resp.DateRange.Max)
	assert.Nil(t, resp.SheetName)
}

func TestHandle_EmptyBodyUsesDefaults(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/calendar/load", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &loadCalendar.Request{}, uc.req)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "missing spreadsheet", err: loadCalendar.ErrMissingSpreadsheetID, wantStatus: http.StatusBadRequest, wantMessage: msgMissingSpreadsheet},
		{name: "date start without cell", err: loadCalendar.ErrDateStartWithoutCell, wantStatus: http.StatusBadRequest, wantMessage: msgDateStartWithoutCell},
		{name: "invalid reference", err: fmt.Errorf("%w: 7C", calendar.ErrInvalidReference), wantStatus: http.StatusBadRequest},
		{name: "start date unresolved", err: calendar.ErrStartDateUnresolved, wantStatus: http.StatusBadRequest},
		{name: "header not found", err: calendar.ErrHeaderNotFound, wantStatus: http.StatusBadRequest},
		{
			name:        "permission denied",
			err:         fmt.Errorf("%w: %w", calendar.ErrSourceUnavailable, sheets.ErrPermissionDenied),
			wantStatus:  http.StatusBadGateway,
			wantMessage: msgPermissionDenied,
		},
		{
			name:       "network error",
			err:        fmt.Errorf("%w: %w", calendar.ErrSourceUnavailable, context.DeadlineExceeded),
			wantStatus: http.StatusBadGateway,
		},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/calendar/load", strings.NewReader(`{}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/calendar/load", strings.NewReader(`{"spreadsheetId":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
