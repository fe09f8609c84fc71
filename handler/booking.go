package handler

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBooking runs the full reservation pipeline: validate, resolve event
// and showtime, enforce payment policy, reserve seats atomically, issue
// tickets, persist. Seats reserved by a request that later fails are always
// released before the error goes back out.
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	claim, isAdmin := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no authenticated user"))
	}

	var event model.Event
	if err := db.First(&event, input.Event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	var showtime model.Showtime
	if err := db.Where("id = ? AND event_id = ?", input.Showtime, event.ID).First(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
	}

	if err := helper.CheckBookingPolicy(&input, isAdmin); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	paymentReference := utils.StringPtr(input.PaymentReference)

	// Checked before any inventory is touched: a duplicate payment must
	// never consume seats.
	if paymentReference != nil {
		var count int64
		if err := db.Model(&model.Booking{}).Where("payment_reference = ?", *paymentReference).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_PAYMENT_REF, errors.New("payment reference already used"))
		}
	}

	totalTickets := input.Tickets.Adult + input.Tickets.Student
	updated, err := helper.ReserveSeats(db, showtime.ID, totalTickets)
	if err != nil {
		var insufficient *helper.InsufficientSeatsError
		if errors.As(err, &insufficient) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_ENOUGH_SEATS, insufficient)
		}
		if errors.Is(err, helper.ErrShowtimeNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tickets := make([]model.IssuedTicket, 0, totalTickets)
	for i := 0; i < input.Tickets.Adult; i++ {
		ticket, err := helper.IssueTicket(constants.FARE_CLASS_ADULT)
		if err != nil {
			releaseReservation(db, showtime.ID, totalTickets)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		tickets = append(tickets, ticket)
	}
	for i := 0; i < input.Tickets.Student; i++ {
		ticket, err := helper.IssueTicket(constants.FARE_CLASS_STUDENT)
		if err != nil {
			releaseReservation(db, showtime.ID, totalTickets)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		tickets = append(tickets, ticket)
	}

	totalAmount := helper.ComputeTotal(input.Tickets.Adult, input.Tickets.Student, event.AdultTicketPrice, event.StudentTicketPrice)

	customerName := input.CustomerName
	customerPhone := input.CustomerPhone
	purchaserEmail := ""
	var userId *uint
	var adminBookedBy *uint
	if isAdmin {
		adminBookedBy = utils.Ptr(claim.UserId)
	} else {
		var user model.User
		if err := db.First(&user, claim.UserId).Error; err != nil {
			releaseReservation(db, showtime.ID, totalTickets)
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}
		userId = utils.Ptr(user.ID)
		customerName = user.FullName
		customerPhone = user.PhoneNumber
		purchaserEmail = user.Email
	}

	// Online bookings always carry completed status (policy); only admin
	// cash/qr bookings may omit it.
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = constants.PAYMENT_STATUS_CASH
	}

	booking := model.Booking{
		PublicCode:       "BKG-" + strings.ToUpper(uuid.New().String()[:8]),
		EventId:          event.ID,
		ShowtimeId:       showtime.ID,
		Date:             input.Date,
		UserId:           userId,
		BookedByAdmin:    isAdmin,
		AdminBookedBy:    adminBookedBy,
		CustomerName:     customerName,
		CustomerPhone:    customerPhone,
		AdultTickets:     input.Tickets.Adult,
		StudentTickets:   input.Tickets.Student,
		TotalAmount:      totalAmount,
		PaymentStatus:    paymentStatus,
		PaymentMethod:    input.PaymentMethod,
		PaymentPlatform:  input.PaymentPlatform,
		PaymentReference: paymentReference,
		Tickets:          tickets,
	}

	if err := db.Create(&booking).Error; err != nil {
		releaseReservation(db, showtime.ID, totalTickets)
		if isDuplicateKeyError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_PAYMENT_REF, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishAvailability(showtime.ID, updated.SeatAvailable)

	if purchaserEmail != "" {
		sendBookingConfirmation(purchaserEmail, &booking, &event, &showtime)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"booking":       booking,
		"seatAvailable": updated.SeatAvailable,
	})
}

func releaseReservation(db *gorm.DB, showtimeID uint, count int) {
	if err := helper.ReleaseSeats(db, showtimeID, count); err != nil {
		log.Printf("failed to release %d seats on showtime %d: %v", count, showtimeID, err)
	}
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func sendBookingConfirmation(to string, booking *model.Booking, event *model.Event, showtime *model.Showtime) {
	attachments := make([]utils.TicketAttachment, 0, len(booking.Tickets))
	for _, ticket := range booking.Tickets {
		qrBytes, err := utils.GenerateQRCode(helper.TicketVerifyURL(ticket.TicketId), 256)
		if err != nil {
			log.Printf("failed to render QR for ticket %s: %v", ticket.TicketId, err)
			continue
		}
		attachments = append(attachments, utils.TicketAttachment{TicketId: ticket.TicketId, QRBytes: qrBytes})
	}

	utils.SendBookingConfirmationEmail(to, utils.BookingConfirmationData{
		BookingCode:   booking.PublicCode,
		EventTitle:    event.Title,
		Showtime:      fmt.Sprintf("%s %s", booking.Date.Format("2006-01-02"), showtime.Time),
		Tickets:       fmt.Sprintf("%d adult, %d student", booking.AdultTickets, booking.StudentTickets),
		TotalAmount:   booking.TotalAmount,
		PaymentMethod: booking.PaymentMethod,
	}, attachments)
}

// SanitizeBookings strips the acting-admin identity from bookings customers
// made themselves before the list leaves the server.
func SanitizeBookings(bookings []model.Booking) []model.Booking {
	for i := range bookings {
		if !bookings[i].BookedByAdmin {
			bookings[i].AdminBookedBy = nil
		}
	}
	return bookings
}

func GetBookings(c *fiber.Ctx) error {
	claim, isAdmin := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no authenticated user"))
	}

	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	// Customers only ever see their own bookings.
	if !isAdmin {
		filterInput.UserId = claim.UserId
	}

	db := database.DB
	condition := db.Model(&model.Booking{}).
		Preload("Tickets").
		Preload("Event").
		Preload("Showtime")

	if filterInput.UserId > 0 {
		condition = condition.Where("user_id = ?", filterInput.UserId)
	}
	if filterInput.EventId > 0 {
		condition = condition.Where("event_id = ?", filterInput.EventId)
	}
	if filterInput.ShowtimeId > 0 {
		condition = condition.Where("showtime_id = ?", filterInput.ShowtimeId)
	}

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       SanitizeBookings(bookings),
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
