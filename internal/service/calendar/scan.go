package calendar

// collect обходит индексы [from, to) и накапливает значения, принятые accept.
// Отклонённые индексы пропускаются без последствий для накопленного результата.
// Обход прекращается, когда накоплено limit значений (limit <= 0 - без ограничения).
func collect[T any](from, to, limit int, accept func(i int) (T, bool)) []T {
	result := make([]T, 0)
	for i := from; i < to; i++ {
		if limit > 0 && len(result) >= limit {
			break
		}
		value, ok := accept(i)
		if !ok {
			continue
		}
		result = append(result, value)
	}
	return result
}
