package sheets

// ConnectionStatus результат проверки подключения к Google Sheets API
type ConnectionStatus struct {
	Connected             bool
	Authenticated         bool
	Message               string
	SpreadsheetAccessible *bool
	SpreadsheetTitle      *string
	Error                 *string
}

// MergeRange объединённый диапазон ячеек, индексы 0-based, концы не включаются
type MergeRange struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}
