package sheets

import "errors"

var (
	// ErrSpreadsheetNotFound возвращается, когда таблица не найдена (HTTP 404)
	ErrSpreadsheetNotFound = errors.New("sheets client: spreadsheet not found")

	// ErrPermissionDenied возвращается, когда у сервисного аккаунта нет доступа к таблице (HTTP 403)
	ErrPermissionDenied = errors.New("sheets client: permission denied")

	// ErrSheetNotFound возвращается, когда в таблице нет листа с указанным именем
	ErrSheetNotFound = errors.New("sheets client: sheet not found")

	// ErrEmptySheet возвращается, когда на листе нет данных
	ErrEmptySheet = errors.New("sheets client: no data found in sheet")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheets client: internal error")
)
