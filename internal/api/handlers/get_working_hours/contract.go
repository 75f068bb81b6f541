package get_working_hours

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
)

type BranchClient interface {
	GetWorkingHours(ctx context.Context) (*branchservice.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
