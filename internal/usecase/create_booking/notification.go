package create_booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sparkleclean/SCS-BookingService/internal/domain"
	"github.com/sparkleclean/SCS-BookingService/internal/integrations/automation"
)

// buildNotification собирает плоский payload для automation-вебхука
// Те же поля, что в персистентной записи, но в форме, пригодной для
// прямой подстановки в письма: человекочитаемые даты рядом с машинными
func buildNotification(b *domain.Booking) *automation.NotificationPayload {
	payload := &automation.NotificationPayload{
		EventID:   uuid.NewString(),
		EventType: "booking.confirmed",

		OrderReference: b.Reference,
		ServiceType:    string(b.ServiceType),

		CustomerName:  b.Contact.Name,
		CustomerEmail: b.Contact.Email,
		CustomerPhone: b.Contact.Phone,

		AddressLine1: b.Address.Line1,
		AddressLine2: b.Address.Line2,
		Town:         b.Address.Town,
		County:       b.Address.County,
		Postcode:     b.Address.Postcode,

		Date:          b.Date.Format(domain.DateFormat),
		DateDisplay:   b.Date.Format("Monday, 2 January 2006"),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		PaymentDueAt:  b.PaymentDueAt.Format(time.RFC3339),
		PaymentDueFmt: b.PaymentDueAt.Format("15:04, 2 January 2006"),

		RoomSummary:    summarizeRooms(b.Rooms),
		ExtrasSummary:  summarizeAddOns(b.AddOns),
		Footfall:       string(b.Footfall),
		Supplies:       string(b.Supplies),
		AccessMethod:   string(b.AccessMethod),
		EstimatedHours: b.EstimatedHours,
		TeamApplied:    b.TeamApplied,
		TotalPrice:     b.TotalPrice,
	}

	if b.AccessDetails != nil {
		payload.AccessDetails = *b.AccessDetails
	}

	return payload
}

// summarizeRooms возвращает сводку комнат вида "2x bedroom (m), 1x kitchen (l)"
func summarizeRooms(rooms []domain.RoomEntry) string {
	if len(rooms) == 0 {
		return "no rooms"
	}

	type key struct {
		roomType string
		size     domain.SizeClass
	}
	counts := make(map[key]int)
	order := make([]key, 0)
	for _, room := range rooms {
		k := key{roomType: room.RoomType, size: room.SizeClass}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", counts[k], k.roomType, k.size))
	}
	return strings.Join(parts, ", ")
}

// summarizeAddOns возвращает сводку аддонов вида "fridge x1, cupboards x2"
func summarizeAddOns(addOns map[string]int) string {
	if len(addOns) == 0 {
		return ""
	}

	keys := make([]string, 0, len(addOns))
	for k, count := range addOns {
		if count > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", k, addOns[k]))
	}
	return strings.Join(parts, ", ")
}
