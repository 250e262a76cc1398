package get_load_history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type fakeService struct {
	spreadsheetID string
	limit         uint64
	err           error
}

func (f *fakeService) ListLoads(_ context.Context, spreadsheetID string, limit uint64) (*models.LoadHistoryResponse, error) {
	f.spreadsheetID, f.limit = spreadsheetID, limit
	if f.err != nil {
		return nil, f.err
	}
	return &models.LoadHistoryResponse{Loads: []models.LoadRecordResponse{}}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantLimit  uint64
	}{
		{name: "default limit", query: "", wantStatus: http.StatusOK, wantLimit: defaultLimit},
		{name: "explicit limit", query: "?limit=5&spreadsheet_id=abc", wantStatus: http.StatusOK, wantLimit: 5},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusBadRequest},
		{name: "too large", query: "?limit=1000", wantStatus: http.StatusBadRequest},
		{name: "not a number", query: "?limit=ten", wantStatus: http.StatusBadRequest},
		{name: "journal disabled", query: "", err: availability.ErrLoadLogDisabled, wantStatus: http.StatusNotFound, wantLimit: defaultLimit},
		{name: "repository failure", query: "", err: availability.ErrInternal, wantStatus: http.StatusInternalServerError, wantLimit: defaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/loads"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLimit, svc.limit)
		})
	}
}
