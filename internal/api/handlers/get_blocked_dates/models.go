package get_blocked_dates

import (
	getBlockedDates "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_blocked_dates"
)

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	Dates []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBlockedDates.Response) *BlockedDatesResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []string{}
	}
	return &BlockedDatesResponse{Dates: dates}
}
