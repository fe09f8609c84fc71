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

func GetPublications(c *fiber.Ctx) error {
	var publications []model.Publication
	if err := database.DB.Preload("Photos").Order("year desc, title asc").Find(&publications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, publications)
}

func CreatePublication(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePublicationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	publication := model.Publication{
		Title:       input.Title,
		Description: input.Description,
		Year:        input.Year,
	}
	if err := database.DB.Create(&publication).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, publication)
}

func EditPublication(c *fiber.Ctx) error {
	publicationId := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.UpdatePublicationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	var publication model.Publication
	if err := db.First(&publication, publicationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if err := copier.CopyWithOption(&publication, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := db.Save(&publication).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, publication)
}

func UploadPublicationPhotos(c *fiber.Ctx) error {
	publicationId := c.Locals("inputId").(int)

	db := database.DB
	var publication model.Publication
	if err := db.First(&publication, publicationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No photos supplied", errors.New("empty photos field"))
	}

	var photos []model.PublicationPhoto
	for _, file := range files {
		uploaded, err := helper.UploadImage(c.Context(), getCloudinary(), file, "publications")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Photo upload failed", err)
		}
		photos = append(photos, model.PublicationPhoto{
			PublicationId: publication.ID,
			Url:           uploaded.Url,
			PublicId:      uploaded.PublicId,
		})
	}

	if err := db.Create(&photos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, photos)
}

func DeletePublication(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var photos []model.PublicationPhoto
	db.Where("publication_id IN ?", input.IDs).Find(&photos)
	for _, photo := range photos {
		helper.DestroyImage(c.Context(), getCloudinary(), photo.PublicId)
	}

	tx := db.Begin()
	if err := tx.Where("publication_id IN ?", input.IDs).Delete(&model.PublicationPhoto{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("id IN ?", input.IDs).Delete(&model.Publication{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
