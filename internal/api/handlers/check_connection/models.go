package check_connection

import "github.com/m04kA/SMC-CalendarService/internal/integrations/sheets"

// ConnectionResponse HTTP ответ проверки подключения
type ConnectionResponse struct {
	Connected             bool    `json:"connected"`
	Authenticated         bool    `json:"authenticated"`
	Message               string  `json:"message"`
	SpreadsheetAccessible *bool   `json:"spreadsheetAccessible,omitempty"`
	SpreadsheetTitle      *string `json:"spreadsheetTitle,omitempty"`
	Error                 *string `json:"error,omitempty"`
}

// FromConnectionStatus конвертирует результат клиента в HTTP ответ
func FromConnectionStatus(s *sheets.ConnectionStatus) *ConnectionResponse {
	return &ConnectionResponse{
		Connected:             s.Connected,
		Authenticated:         s.Authenticated,
		Message:               s.Message,
		SpreadsheetAccessible: s.SpreadsheetAccessible,
		SpreadsheetTitle:      s.SpreadsheetTitle,
		Error:                 s.Error,
	}
}
