package get_working_hours

import (
	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// WorkingHourResponse расписание на один день недели.
// Время отдается нормализованным до "HH:mm".
type WorkingHourResponse struct {
	Day      string `json:"day"`
	Open     string `json:"open,omitempty"`
	Close    string `json:"close,omitempty"`
	IsClosed bool   `json:"isClosed"`
}

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	WorkingHours []WorkingHourResponse `json:"workingHours"`
}

// FromClientResponse конвертирует ответ клиента в HTTP response
func FromClientResponse(resp *branchservice.WorkingHoursResponse) *WorkingHoursResponse {
	hours := make([]WorkingHourResponse, 0, len(resp.WorkingHours))
	for _, wh := range resp.WorkingHours {
		if wh.IsClosed {
			hours = append(hours, WorkingHourResponse{Day: wh.Day, IsClosed: true})
			continue
		}

		open, openErr := types.NewTimeStringFromString(wh.Open)
		closeAt, closeErr := types.NewTimeStringFromString(wh.Close)
		if openErr != nil || closeErr != nil {
			hours = append(hours, WorkingHourResponse{Day: wh.Day, IsClosed: true})
			continue
		}

		hours = append(hours, WorkingHourResponse{
			Day:   wh.Day,
			Open:  open.String(),
			Close: closeAt.String(),
		})
	}
	return &WorkingHoursResponse{WorkingHours: hours}
}
