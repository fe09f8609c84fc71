package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"theatre_manager/config"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/model"
	"theatre_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jordan-wright/email"
)

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if !helper.ValidEmail(input.Email) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, errors.New("invalid email address"))
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email already registered"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := model.User{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    hash,
		Role:        constants.ROLE_USER,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func Me(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no authenticated user"))
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no authenticated user"))
	}

	db := database.DB
	var user model.User
	if err := db.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("currentPassword invalid"), "currentPassword")
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB
	emailInput, ok := c.Locals("EmailForgotPassword").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var user model.User
	if err := db.Where("email = ?", emailInput.Email).First(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.ConfigOr("PUBLIC_BASE_URL", "http://localhost:8000"), token)
	e := email.NewEmail()
	e.From = config.Config("SMTP_FROM")
	e.To = []string{emailInput.Email}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Follow this link to reset your password: %s\nThe link expires in one hour.", resetLink))
	smtpAddr := fmt.Sprintf("%s:%s", config.Config("SMTP_HOST"), config.ConfigOr("SMTP_PORT", "587"))
	auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), config.Config("SMTP_HOST"))
	if err := e.Send(smtpAddr, auth); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not send reset email", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Reset link sent"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired token", err)
	}

	var user model.User
	if err := db.First(&user, resetToken.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password reset"})
}

func UploadAvatar(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no authenticated user"))
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing avatar file", err)
	}

	db := database.DB
	var user model.User
	if err := db.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	uploaded, err := helper.UploadImage(c.Context(), getCloudinary(), file, "avatars")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Avatar upload failed", err)
	}

	helper.DestroyImage(c.Context(), getCloudinary(), user.AvatarPublicId)

	user.AvatarUrl = uploaded.Url
	user.AvatarPublicId = uploaded.PublicId
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
