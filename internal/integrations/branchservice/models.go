package branchservice

import (
	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// WorkingHour расписание филиала на один день недели
type WorkingHour struct {
	Day      string `json:"day"`   // "Monday".."Sunday"
	Open     string `json:"open"`  // "HH:mm" или "HH:mm:ss"
	Close    string `json:"close"` // "HH:mm" или "HH:mm:ss"
	IsClosed bool   `json:"is_closed"`
}

// WorkingHoursResponse ответ эндпоинта рабочих часов
type WorkingHoursResponse struct {
	WorkingHours []WorkingHour `json:"workingHours"`
}

// ToDomain конвертирует расписание в доменную таблицу по дням недели.
// Время нормализуется до "HH:mm"; день с нераспознаваемым временем
// считается закрытым.
func (r *WorkingHoursResponse) ToDomain() domain.WeekSchedule {
	schedule := make(domain.WeekSchedule, len(r.WorkingHours))
	for _, wh := range r.WorkingHours {
		if wh.IsClosed {
			schedule[wh.Day] = domain.DaySchedule{IsClosed: true}
			continue
		}

		open, openErr := types.NewTimeStringFromString(wh.Open)
		closeAt, closeErr := types.NewTimeStringFromString(wh.Close)
		if openErr != nil || closeErr != nil {
			schedule[wh.Day] = domain.DaySchedule{IsClosed: true}
			continue
		}

		schedule[wh.Day] = domain.DaySchedule{Open: open, Close: closeAt}
	}
	return schedule
}
