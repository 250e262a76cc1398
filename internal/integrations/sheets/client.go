package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// valuesRange колонки, которые читаются с листа
const valuesRange = "A:ZZ"

// Client клиент Google Sheets API для чтения календаря бронирований
type Client struct {
	service *sheets.Service
	log     Logger
}

// NewClient создает клиент, авторизованный сервисным аккаунтом из файла credentialsPath
func NewClient(ctx context.Context, credentialsPath string, timeout time.Duration, log Logger) (*Client, error) {
	credentialsJSON, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read credentials file: %v", ErrInternal, err)
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse credentials: %v", ErrInternal, err)
	}

	httpClient := config.Client(ctx)
	httpClient.Timeout = timeout

	return NewClientWithHTTP(ctx, httpClient, log)
}

// NewClientWithHTTP создает клиент поверх готового HTTP клиента
func NewClientWithHTTP(ctx context.Context, httpClient *http.Client, log Logger, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to create Sheets service: %v", ErrInternal, err)
	}

	return &Client{service: srv, log: log}, nil
}

// GetGrid читает лист таблицы и возвращает значения ячеек.
// Если sheetName пуст, читается первый лист. Объединённые ячейки разворачиваются.
func (c *Client) GetGrid(ctx context.Context, spreadsheetID, sheetName string) (domain.Grid, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title),merges)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	sheet := findSheet(spreadsheet.Sheets, sheetName)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	title := sheet.Properties.Title
	values, err := c.service.Spreadsheets.Values.Get(spreadsheetID, sheetRange(title)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	if len(values.Values) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySheet, title)
	}

	merges := toMergeRanges(sheet.Merges)
	grid := applyMerges(toGrid(values.Values), merges)

	c.log.Info("Sheets: fetched sheet %q of spreadsheet %s: rows=%d, merges=%d", title, spreadsheetID, len(grid), len(merges))
	return grid, nil
}

// CheckConnection проверяет авторизацию и, если задан spreadsheetID, доступ к таблице
func (c *Client) CheckConnection(ctx context.Context, spreadsheetID string) *ConnectionStatus {
	status := &ConnectionStatus{
		Connected:     true,
		Authenticated: true,
		Message:       "Successfully authenticated with Google Sheets API",
	}

	if spreadsheetID == "" {
		return status
	}

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("properties(title)").
		Context(ctx).
		Do()
	if err != nil {
		accessible := false
		status.SpreadsheetAccessible = &accessible

		var errText string
		switch mapped := mapAPIError(err); {
		case errors.Is(mapped, ErrSpreadsheetNotFound):
			errText = fmt.Sprintf("Spreadsheet not found (ID: %s)", spreadsheetID)
			status.Message = "Authenticated, but spreadsheet not found. Check the spreadsheet ID."
		case errors.Is(mapped, ErrPermissionDenied):
			errText = "Permission denied"
			status.Message = "Authenticated, but no access to this spreadsheet. Make sure the service account has access."
		default:
			errText = err.Error()
			status.Message = fmt.Sprintf("Authenticated, but error accessing spreadsheet: %v", err)
		}
		status.Error = &errText

		c.log.Warn("Sheets: connection check for spreadsheet %s failed: %v", spreadsheetID, err)
		return status
	}

	accessible := true
	title := "Unknown"
	if spreadsheet.Properties != nil && spreadsheet.Properties.Title != "" {
		title = spreadsheet.Properties.Title
	}
	status.SpreadsheetAccessible = &accessible
	status.SpreadsheetTitle = &title
	status.Message = fmt.Sprintf("Successfully connected. Access to spreadsheet '%s' confirmed.", title)

	return status
}

func findSheet(list []*sheets.Sheet, name string) *sheets.Sheet {
	for _, sheet := range list {
		if sheet == nil || sheet.Properties == nil {
			continue
		}
		if name == "" || sheet.Properties.Title == name {
			return sheet
		}
	}
	return nil
}

// sheetRange формирует диапазон в A1-нотации, экранируя имя листа
func sheetRange(title string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(title, "'", "''"), valuesRange)
}

func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrSpreadsheetNotFound, apiErr.Message)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrPermissionDenied, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
