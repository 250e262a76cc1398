package check_connection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/sheets"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type fakeClient struct{ spreadsheetID string }

func (f *fakeClient) CheckConnection(_ context.Context, spreadsheetID string) *sheets.ConnectionStatus {
	f.spreadsheetID = spreadsheetID
	accessible := false
	errText := "Permission denied"
	return &sheets.ConnectionStatus{
		Connected:             true,
		Authenticated:         true,
		Message:               "no access",
		SpreadsheetAccessible: &accessible,
		Error:                 &errText,
	}
}

func TestHandle(t *testing.T) {
	client := &fakeClient{}
	h := NewHandler(client, "default-id", logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/connection/check", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "default-id", client.spreadsheetID)
	assert.JSONEq(t, `{"connected":true,"authenticated":true,"message":"no access","spreadsheetAccessible":false,"error":"Permission denied"}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/connection/check?spreadsheet_id=other", nil))
	assert.Equal(t, "other", client.spreadsheetID)
}
