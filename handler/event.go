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
	"github.com/jinzhu/copier"
)

func eventStatusFor(startDate, endDate time.Time) string {
	today := time.Now().Truncate(24 * time.Hour)
	if today.After(endDate.Truncate(24 * time.Hour)) {
		return constants.EVENT_STATUS_ENDED
	}
	if !today.Before(startDate.Truncate(24 * time.Hour)) {
		return constants.EVENT_STATUS_ONGOING
	}
	return constants.EVENT_STATUS_UPCOMING
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()

	event := model.Event{
		Type:               input.Type,
		Title:              input.Title,
		Slug:               helper.GenerateUniqueEventSlug(tx, input.Title),
		Description:        input.Description,
		Director:           input.Director,
		Venue:              input.Venue,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		AdultTicketPrice:   input.AdultTicketPrice,
		StudentTicketPrice: input.StudentTicketPrice,
		Status:             eventStatusFor(input.StartDate, input.EndDate),
	}
	for _, member := range input.Cast {
		event.Cast = append(event.Cast, model.CastMember{Name: member.Name, Role: member.Role})
	}

	if err := tx.Create(&event).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

func GetEvents(c *fiber.Ctx) error {
	filterInput := new(model.FilterEventInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Event{}).Preload("Photos")

	if filterInput.Type != "" {
		condition = condition.Where("type = ?", filterInput.Type)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var events []model.Event
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("start_date asc").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       events,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var event model.Event
	err := database.DB.
		Preload("Cast").
		Preload("Photos").
		Preload("Showtimes").
		Where("slug = ?", slug).
		First(&event).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func EditEvent(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(uint)
	input, ok := c.Locals("input").(model.UpdateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()

	var event model.Event
	if err := tx.First(&event, eventId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&event, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if input.Title != nil {
		event.Slug = helper.GenerateUniqueEventSlug(tx, *input.Title)
	}
	event.Status = eventStatusFor(event.StartDate, event.EndDate)

	if input.Cast != nil {
		if err := tx.Where("event_id = ?", event.ID).Delete(&model.CastMember{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
		event.Cast = nil
		for _, member := range input.Cast {
			event.Cast = append(event.Cast, model.CastMember{EventId: event.ID, Name: member.Name, Role: member.Role})
		}
	}

	if err := tx.Save(&event).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func UploadEventPhotos(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(uint)

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No photos supplied", errors.New("empty photos field"))
	}

	db := database.DB
	var photos []model.EventPhoto
	for _, file := range files {
		uploaded, err := helper.UploadImage(c.Context(), getCloudinary(), file, "events")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Photo upload failed", err)
		}
		photos = append(photos, model.EventPhoto{
			EventId:  eventId,
			Url:      uploaded.Url,
			PublicId: uploaded.PublicId,
		})
	}

	if err := db.Create(&photos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, photos)
}

// DeleteEvent removes events and all owned records; cloud photo assets are
// destroyed first so nothing orphans in the image host.
func DeleteEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var bookingCount int64
	db.Model(&model.Booking{}).Where("event_id IN ?", input.IDs).Count(&bookingCount)
	if bookingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Events with bookings cannot be deleted", errors.New("bookings reference these events"))
	}

	var photos []model.EventPhoto
	db.Where("event_id IN ?", input.IDs).Find(&photos)
	for _, photo := range photos {
		helper.DestroyImage(c.Context(), getCloudinary(), photo.PublicId)
	}

	tx := db.Begin()
	if err := tx.Where("event_id IN ?", input.IDs).Delete(&model.EventPhoto{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("event_id IN ?", input.IDs).Delete(&model.CastMember{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("event_id IN ?", input.IDs).Delete(&model.Showtime{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("id IN ?", input.IDs).Delete(&model.Event{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
