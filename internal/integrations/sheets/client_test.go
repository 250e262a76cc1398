package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const spreadsheetJSON = `{
  "sheets": [
    {"properties": {"sheetId": 1, "title": "Архив"}},
    {
      "properties": {"sheetId": 2, "title": "Ноябрь"},
      "merges": [{"sheetId": 2, "startRowIndex": 1, "endRowIndex": 2, "startColumnIndex": 2, "endColumnIndex": 4}]
    }
  ]
}`

const valuesJSON = `{
  "range": "'Ноябрь'!A1:D2",
  "majorDimension": "ROWS",
  "values": [["", "", "24.11.2025", "25.11.2025"], ["Deluxe", "A-103", "Гость"]]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClientWithHTTP(context.Background(), srv.Client(), nopLogger{}, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return client
}

func TestClient_GetGrid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/values/"):
			assert.Contains(t, r.URL.Path, "Ноябрь")
			fmt.Fprint(w, valuesJSON)
		case strings.HasSuffix(r.URL.Path, "/v4/spreadsheets/sheet-id"):
			fmt.Fprint(w, spreadsheetJSON)
		default:
			http.NotFound(w, r)
		}
	})

	grid, err := client.GetGrid(context.Background(), "sheet-id", "Ноябрь")
	require.NoError(t, err)

	assert.Equal(t, domain.Grid{
		{"", "", "24.11.2025", "25.11.2025"},
		{"Deluxe", "A-103", "Гость", "Гость"},
	}, grid)
}

func TestClient_GetGrid_SheetNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, spreadsheetJSON)
	})

	_, err := client.GetGrid(context.Background(), "sheet-id", "Декабрь")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestClient_GetGrid_APIErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
	}{
		{"not found", http.StatusNotFound, ErrSpreadsheetNotFound},
		{"forbidden", http.StatusForbidden, ErrPermissionDenied},
		{"bad request", http.StatusBadRequest, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprintf(w, `{"error": {"code": %d, "message": "boom"}}`, tt.status)
			})

			_, err := client.GetGrid(context.Background(), "sheet-id", "")
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClient_CheckConnection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error": {"code": 404, "message": "not found"}}`)
			return
		}
		fmt.Fprint(w, `{"properties": {"title": "Шахматка"}}`)
	})

	status := client.CheckConnection(context.Background(), "")
	assert.True(t, status.Authenticated)
	assert.Nil(t, status.SpreadsheetAccessible)

	status = client.CheckConnection(context.Background(), "ok")
	require.NotNil(t, status.SpreadsheetAccessible)
	assert.True(t, *status.SpreadsheetAccessible)
	assert.Equal(t, "Шахматка", *status.SpreadsheetTitle)

	status = client.CheckConnection(context.Background(), "missing")
	require.NotNil(t, status.SpreadsheetAccessible)
	assert.False(t, *status.SpreadsheetAccessible)
	require.NotNil(t, status.Error)
	assert.Contains(t, *status.Error, "missing")
}

func TestSheetRange(t *testing.T) {
	assert.Equal(t, "'Ноябрь'!A:ZZ", sheetRange("Ноябрь"))
	assert.Equal(t, "'O''Brien'!A:ZZ", sheetRange("O'Brien"))
}
