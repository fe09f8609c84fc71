package validate

import (
	"errors"
	"strconv"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		var input model.UpdateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var event model.Event
		if err := database.DB.First(&event, valueKey).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err, "eventId")
		}

		c.Locals("eventId", uint(valueKey))
		c.Locals("input", input)
		return c.Next()
	}
}

func EventExists(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		var event model.Event
		if err := database.DB.First(&event, valueKey).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err, "eventId")
		}

		c.Locals("eventId", uint(valueKey))
		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}
		return c.Next()
	}
}
