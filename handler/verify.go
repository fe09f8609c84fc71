package handler

import (
	"errors"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/model"
	"theatre_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VerifyTicket handles the scanner POST body {ticketId, hash}.
func VerifyTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.VerifyTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	return verifyAndMark(c, input.TicketId, input.Hash)
}

// VerifyTicketByLink serves the URL embedded in the QR code itself.
func VerifyTicketByLink(c *fiber.Ctx) error {
	ticketId := c.Params("ticketId")
	token := c.Query("token")
	if ticketId == "" || token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing ticketId or token", errors.New("missing params"))
	}
	return verifyAndMark(c, ticketId, token)
}

func verifyAndMark(c *fiber.Ctx, ticketId, token string) error {
	if !helper.VerifyTicketToken(ticketId, token) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_QR_TOKEN, errors.New("signature mismatch"))
	}

	db := database.DB

	var ticket model.IssuedTicket
	if err := db.Where("ticket_id = ?", ticketId).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Attendance flips exactly once. The attendance = false guard in the
	// UPDATE closes the double-scan race two gates would otherwise hit.
	now := time.Now()
	result := db.Model(&model.IssuedTicket{}).
		Where("ticket_id = ? AND attendance = false", ticketId).
		Updates(map[string]interface{}{"attendance": true, "scanned_at": now})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_ALREADY_SCANNED, errors.New("ticket already scanned"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":   "Ticket verified and attendance marked",
		"ticketId":  ticketId,
		"bookingId": ticket.BookingId,
		"scannedAt": now,
	})
}
