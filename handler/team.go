package handler

import (
	"errors"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetTeamMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	if err := database.DB.Order("display_order asc, name asc").Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

func CreateTeamMember(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTeamMemberInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	member := model.TeamMember{
		Name:         input.Name,
		Role:         input.Role,
		Bio:          input.Bio,
		DisplayOrder: input.DisplayOrder,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, member)
}

func EditTeamMember(c *fiber.Ctx) error {
	memberId := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.UpdateTeamMemberInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	var member model.TeamMember
	if err := db.First(&member, memberId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if err := copier.CopyWithOption(&member, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := db.Save(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func UploadTeamMemberPhoto(c *fiber.Ctx) error {
	memberId := c.Locals("inputId").(int)

	file, err := c.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing photo file", err)
	}

	db := database.DB
	var member model.TeamMember
	if err := db.First(&member, memberId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	uploaded, err := helper.UploadImage(c.Context(), getCloudinary(), file, "team")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Photo upload failed", err)
	}

	helper.DestroyImage(c.Context(), getCloudinary(), member.PhotoPublicId)

	member.PhotoUrl = uploaded.Url
	member.PhotoPublicId = uploaded.PublicId
	if err := db.Save(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func DeleteTeamMember(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var members []model.TeamMember
	db.Where("id IN ?", input.IDs).Find(&members)
	for _, member := range members {
		helper.DestroyImage(c.Context(), getCloudinary(), member.PhotoPublicId)
	}

	if err := db.Where("id IN ?", input.IDs).Delete(&model.TeamMember{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
