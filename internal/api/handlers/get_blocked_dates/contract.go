package get_blocked_dates

import (
	"context"

	getBlockedDates "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_blocked_dates"
)

type GetBlockedDatesUseCase interface {
	Execute(ctx context.Context) (*getBlockedDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
