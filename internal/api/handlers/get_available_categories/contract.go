package get_available_categories

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetAvailableCategories(ctx context.Context, req *models.CategoriesRequest) (*models.CategoriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
