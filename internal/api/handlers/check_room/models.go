package check_room

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

var errMissingRoom = errors.New("roomNumber is required")

// CheckRoomRequest HTTP запрос доступности номера
type CheckRoomRequest struct {
	RoomNumber string `json:"roomNumber"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CheckRoomRequest) ToServiceRequest() (*models.CheckRoomRequest, error) {
	roomID := strings.TrimSpace(r.RoomNumber)
	if roomID == "" {
		return nil, errMissingRoom
	}

	date, err := handlers.ParseDateField("date", r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CheckRoomRequest{RoomID: roomID, Date: date}, nil
}
