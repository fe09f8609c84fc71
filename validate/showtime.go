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

func CreateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		var input model.CreateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var event model.Event
		if err := database.DB.First(&event, input.EventId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err, "event")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditShowtime(key string) fiber.Handler {
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

		var input model.UpdateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var showtime model.Showtime
		if err := database.DB.First(&showtime, valueKey).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err, "showtimeId")
		}

		c.Locals("showtimeId", uint(valueKey))
		c.Locals("input", input)
		return c.Next()
	}
}

func DeleteShowtime(key string) fiber.Handler {
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

		c.Locals("showtimeId", uint(valueKey))
		return c.Next()
	}
}
