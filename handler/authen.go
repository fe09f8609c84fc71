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
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if input.Email == "" || input.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("missing email or password"))
	}

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("wrong email or password"))
	}

	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Expires:  time.Now().Add(60 * time.Minute),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":   user,
		"tokens": model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		var body model.TokenData
		if err := c.BodyParser(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing refresh token", nil)
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
	}
	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("no userId claim"))
	}

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_FOUND_RECORDS, err)
	}

	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Expires:  time.Now().Add(60 * time.Minute),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken})
}
