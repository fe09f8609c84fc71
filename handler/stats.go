package handler

import (
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type eventStatsRow struct {
	EventId        uint    `json:"eventId"`
	Title          string  `json:"title"`
	Bookings       int64   `json:"bookings"`
	TicketsIssued  int64   `json:"ticketsIssued"`
	TicketsScanned int64   `json:"ticketsScanned"`
	Revenue        float64 `json:"revenue"`
}

type bookingAgg struct {
	EventId  uint
	Title    string
	Bookings int64
}

type revenueAgg struct {
	EventId uint
	Revenue float64
}

type ticketAgg struct {
	EventId uint
	Issued  int64
	Scanned int64
}

// Revenue only counts money actually taken.
func paidStatuses() []string {
	return []string{constants.PAYMENT_STATUS_COMPLETED, constants.PAYMENT_STATUS_CASH}
}

func GetAdminStats(c *fiber.Ctx) error {
	db := database.DB

	var totalBookings int64
	db.Model(&model.Booking{}).Count(&totalBookings)

	var totalRevenue float64
	db.Model(&model.Booking{}).
		Where("payment_status IN ?", paidStatuses()).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue)

	var ticketsIssued int64
	db.Model(&model.IssuedTicket{}).Count(&ticketsIssued)

	var ticketsScanned int64
	db.Model(&model.IssuedTicket{}).Where("attendance = true").Count(&ticketsScanned)

	// Each aggregate is grouped on its own table before merging, so a ticket
	// join can never multiply booking rows or amounts.
	var bookingRows []bookingAgg
	db.Model(&model.Booking{}).
		Select("bookings.event_id, events.title, COUNT(*) AS bookings").
		Joins("JOIN events ON events.id = bookings.event_id").
		Group("bookings.event_id, events.title").
		Order("bookings.event_id").
		Scan(&bookingRows)

	var revenueRows []revenueAgg
	db.Model(&model.Booking{}).
		Where("payment_status IN ?", paidStatuses()).
		Select("event_id, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("event_id").
		Scan(&revenueRows)

	var ticketRows []ticketAgg
	db.Model(&model.IssuedTicket{}).
		Select("bookings.event_id, COUNT(*) AS issued, COUNT(*) FILTER (WHERE issued_tickets.attendance) AS scanned").
		Joins("JOIN bookings ON bookings.id = issued_tickets.booking_id").
		Group("bookings.event_id").
		Scan(&ticketRows)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalBookings":  totalBookings,
		"totalRevenue":   totalRevenue,
		"ticketsIssued":  ticketsIssued,
		"ticketsScanned": ticketsScanned,
		"events":         mergeEventStats(bookingRows, revenueRows, ticketRows),
	})
}

func mergeEventStats(bookings []bookingAgg, revenue []revenueAgg, tickets []ticketAgg) []eventStatsRow {
	rows := make([]eventStatsRow, len(bookings))
	index := make(map[uint]*eventStatsRow, len(bookings))
	for i, b := range bookings {
		rows[i] = eventStatsRow{EventId: b.EventId, Title: b.Title, Bookings: b.Bookings}
		index[b.EventId] = &rows[i]
	}
	for _, r := range revenue {
		if row, ok := index[r.EventId]; ok {
			row.Revenue = r.Revenue
		}
	}
	for _, t := range tickets {
		if row, ok := index[t.EventId]; ok {
			row.TicketsIssued = t.Issued
			row.TicketsScanned = t.Scanned
		}
	}
	return rows
}
