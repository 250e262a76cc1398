package load_calendar

import "strings"

// applyDefaults дополняет запрос значениями из конфигурации
func applyDefaults(req Request, defaults Defaults) Request {
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		req.SpreadsheetID = defaults.SpreadsheetID
	}
	if strings.TrimSpace(req.SheetName) == "" {
		req.SheetName = defaults.SheetName
	}

	if req.AutoDetect {
		req.DateStartCell = ""
		req.DateStart = ""
		return req
	}

	// Дата начала по умолчанию относится только к ячейке по умолчанию
	if strings.TrimSpace(req.DateStartCell) == "" {
		req.DateStartCell = defaults.DateStartCell
		if strings.TrimSpace(req.DateStart) == "" {
			req.DateStart = defaults.DateStart
		}
	}
	return req
}

// validateRequest валидирует запрос после подстановки значений по умолчанию
func validateRequest(req Request) error {
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		return ErrMissingSpreadsheetID
	}

	if strings.TrimSpace(req.DateStart) != "" && strings.TrimSpace(req.DateStartCell) == "" {
		return ErrDateStartWithoutCell
	}

	return nil
}
