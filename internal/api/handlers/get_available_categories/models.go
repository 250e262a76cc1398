package get_available_categories

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

// CategoriesRequest HTTP запрос категорий со свободными номерами
type CategoriesRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CategoriesRequest) ToServiceRequest() (*models.CategoriesRequest, error) {
	checkIn, err := handlers.ParseDateField("checkIn", r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDateField("checkOut", r.CheckOut)
	if err != nil {
		return nil, err
	}
	return &models.CategoriesRequest{CheckIn: checkIn, CheckOut: checkOut}, nil
}
