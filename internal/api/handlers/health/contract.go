package health

type CalendarState interface {
	Loaded() bool
}
