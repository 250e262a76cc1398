package get_available_rooms

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

// AvailableRoomsRequest HTTP запрос свободных номеров
type AvailableRoomsRequest struct {
	CheckIn        string `json:"checkIn"`                  // YYYY-MM-DD
	CheckOut       string `json:"checkOut"`                 // YYYY-MM-DD, не включительно
	CategoryFilter string `json:"categoryFilter,omitempty"` // пусто или ALL - все категории
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AvailableRoomsRequest) ToServiceRequest() (*models.AvailableRoomsRequest, error) {
	checkIn, err := handlers.ParseDateField("checkIn", r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDateField("checkOut", r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &models.AvailableRoomsRequest{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Category: handlers.NormalizeCategoryFilter(r.CategoryFilter),
	}, nil
}
