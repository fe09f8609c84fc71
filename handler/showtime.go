package handler

import (
	"errors"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateShowtime(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var existing model.Showtime
	err := db.Where("event_id = ? AND date = ? AND time = ?", input.EventId, input.Date, input.Time).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SHOWTIME_EXISTS, errors.New("showtime already exists"))
	}

	showtime := model.Showtime{
		EventId:       input.EventId,
		Date:          input.Date,
		Time:          input.Time,
		SeatCapacity:  input.SeatCapacity,
		SeatAvailable: input.SeatCapacity,
	}

	if err := db.Create(&showtime).Error; err != nil {
		// A concurrent create for the same slot loses here, not at the read.
		if isDuplicateKeyError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SHOWTIME_EXISTS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, showtime)
}

func GetShowtimes(c *fiber.Ctx) error {
	filterInput := new(model.FilterShowtimeInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Showtime{})

	if filterInput.EventId > 0 {
		condition = condition.Where("event_id = ?", filterInput.EventId)
	}
	if filterInput.StartDate != "" {
		condition = condition.Where("date >= ?", filterInput.StartDate)
	}
	if filterInput.EndDate != "" {
		condition = condition.Where("date <= ?", filterInput.EndDate)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var showtimes []model.Showtime
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("date asc, time asc").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetShowtimeById(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	var showtime model.Showtime
	if err := database.DB.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func EditShowtime(c *fiber.Ctx) error {
	showtimeId := c.Locals("showtimeId").(uint)
	input, ok := c.Locals("input").(model.UpdateShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Time != nil {
		updates["time"] = *input.Time
	}

	if input.SeatCapacity != nil && *input.SeatCapacity != showtime.SeatCapacity {
		sold := showtime.SeatCapacity - showtime.SeatAvailable
		if *input.SeatCapacity < sold {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CAPACITY_BELOW_SOLD_SEATS, errors.New("capacity below sold seats"))
		}
		delta := *input.SeatCapacity - showtime.SeatCapacity
		updates["seat_capacity"] = *input.SeatCapacity
		updates["seat_available"] = gorm.Expr("seat_available + ?", delta)
	}

	if len(updates) > 0 {
		// The guard keeps a concurrent sell-out from driving the counter
		// below zero while capacity shrinks.
		result := db.Model(&model.Showtime{}).
			Where("id = ? AND seat_available + ? >= 0", showtimeId, capacityDelta(input, &showtime)).
			Updates(updates)
		if result.Error != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, result.Error)
		}
		if result.RowsAffected == 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAPACITY_BELOW_SOLD_SEATS, errors.New("concurrent sales exceed new capacity"))
		}
	}

	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishAvailability(showtime.ID, showtime.SeatAvailable)

	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func capacityDelta(input model.UpdateShowtimeInput, showtime *model.Showtime) int {
	if input.SeatCapacity == nil {
		return 0
	}
	return *input.SeatCapacity - showtime.SeatCapacity
}

func DeleteShowtime(c *fiber.Ctx) error {
	showtimeId := c.Locals("showtimeId").(uint)

	db := database.DB

	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
	}

	var bookingCount int64
	db.Model(&model.Booking{}).Where("showtime_id = ?", showtimeId).Count(&bookingCount)
	if bookingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SHOWTIME_HAS_BOOKINGS, errors.New("bookings reference this showtime"))
	}

	if err := db.Delete(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": showtimeId})
}

func GetShowtimeAvailability(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	available, err := helper.GetAvailability(database.DB, uint(showtimeId))
	if err != nil {
		if errors.Is(err, helper.ErrShowtimeNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtimeId":    showtimeId,
		"seatAvailable": available,
	})
}
