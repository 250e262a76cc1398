package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// RangeAvailable возвращает номера, свободные на все даты календаря из [checkIn, checkOut).
// День выезда не проверяется: бронь, заканчивающаяся в день выезда, его не занимает.
// Если ни одной даты периода нет в календаре, номер оценить нельзя и он не попадает в результат.
// categoryFilter сравнивается с категорией точно (с учётом регистра), пустая строка - без фильтра.
func (s *Snapshot) RangeAvailable(checkIn, checkOut time.Time, categoryFilter string) ([]domain.AvailableRoom, error) {
	dates, err := s.datesInRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AvailableRoom, 0)
	if len(dates) == 0 {
		return result, nil
	}

	for i := range s.rooms {
		room := &s.rooms[i]
		if categoryFilter != "" && room.Category != categoryFilter {
			continue
		}
		if isFreeOn(room, dates) {
			result = append(result, domain.AvailableRoom{Category: room.Category, RoomID: room.RoomID})
		}
	}

	return result, nil
}

// RoomAvailableOn проверяет, свободен ли номер на дату
func (s *Snapshot) RoomAvailableOn(roomID string, date time.Time) (bool, error) {
	idx, ok := s.roomIndex[roomID]
	if !ok {
		return false, fmt.Errorf("%w: room %q", ErrRoomNotFound, roomID)
	}

	date = domain.DateOnly(date)
	occupied, ok := s.rooms[idx].IsOccupied(date)
	if !ok {
		return false, fmt.Errorf("%w: %s (calendar covers %s..%s)", ErrDateNotInCalendar,
			date.Format(domain.DateFormat), s.DateRange().Min.Format(domain.DateFormat), s.DateRange().Max.Format(domain.DateFormat))
	}

	return !occupied, nil
}

// CategoriesWithAvailability возвращает отсортированный список категорий,
// в которых есть хотя бы один свободный номер на период [checkIn, checkOut)
func (s *Snapshot) CategoriesWithAvailability(checkIn, checkOut time.Time) ([]string, error) {
	rooms, err := s.RangeAvailable(checkIn, checkOut, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, room := range rooms {
		if _, ok := seen[room.Category]; ok {
			continue
		}
		seen[room.Category] = struct{}{}
		categories = append(categories, room.Category)
	}
	sort.Strings(categories)

	return categories, nil
}

// datesInRange даты календаря d, для которых checkIn <= d < checkOut
func (s *Snapshot) datesInRange(checkIn, checkOut time.Time) ([]time.Time, error) {
	checkIn, checkOut = domain.DateOnly(checkIn), domain.DateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out %s must be after check-in %s", ErrEmptyDateRange,
			checkOut.Format(domain.DateFormat), checkIn.Format(domain.DateFormat))
	}

	from := sort.Search(len(s.dates), func(i int) bool { return !s.dates[i].Before(checkIn) })
	to := sort.Search(len(s.dates), func(i int) bool { return !s.dates[i].Before(checkOut) })
	return s.dates[from:to], nil
}

func isFreeOn(room *domain.RoomRecord, dates []time.Time) bool {
	for _, date := range dates {
		if occupied, _ := room.IsOccupied(date); occupied {
			return false
		}
	}
	return true
}
