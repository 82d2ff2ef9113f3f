package handler

import (
	"context"
	"errors"

	"nzoo_immo/constants"
	"nzoo_immo/database"
	"nzoo_immo/helper"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCatalog expose le catalogue statique bilingue (?lang=fr|en).
func GetCatalog(c *fiber.Ctx) error {
	lang := c.Query("lang", constants.LANG_FR)
	return utils.SuccessResponse(c, fiber.StatusOK, helper.GetAllSpaces(lang))
}

// GetCatalogByType retourne la fiche d'un type d'espace, 404 si inconnu.
func GetCatalogByType(c *fiber.Ctx) error {
	lang := c.Query("lang", constants.LANG_FR)
	info := helper.GetSpaceInfo(c.Params("type"), lang)
	if info == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Type d'espace non reconnu", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, info)
}

// GetPublicSpaces liste les espaces actifs pour le site public.
func GetPublicSpaces(c *fiber.Ctx) error {
	var spaces model.Spaces
	if err := database.DB.
		Where("is_active = ?", true).
		Order("display_order asc").
		Find(&spaces).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Notes admin jamais exposées publiquement
	for i := range spaces {
		spaces[i].AdminNotes = nil
	}
	return utils.SuccessResponse(c, fiber.StatusOK, spaces)
}

func GetPublicSpaceBySlug(c *fiber.Ctx) error {
	var space model.Space
	if err := database.DB.
		Where("slug = ? AND is_active = ?", c.Params("slug"), true).
		First(&space).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Espace introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	space.AdminNotes = nil
	return utils.SuccessResponse(c, fiber.StatusOK, space)
}

// GetSpaces liste tous les espaces pour l'admin (inactifs inclus).
func GetSpaces(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	filter := new(model.FilterSpace)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Space{})
	if filter.Type != nil {
		db = db.Where("type = ?", *filter.Type)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.AvailabilityStatus != nil {
		db = db.Where("availability_status = ?", *filter.AvailabilityStatus)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var spaces model.Spaces
	if err := db.Order("display_order asc").Find(&spaces).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       spaces,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateSpace(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateSpaceInput)

	var space model.Space
	copier.Copy(&space, &input)
	space.Features = pq.StringArray(input.Features)
	space.Images = pq.StringArray(input.Images)
	space.Slug = helper.GenerateUniqueSpaceSlug(database.DB, input.Name)
	if input.IsActive != nil {
		space.IsActive = *input.IsActive
	} else {
		space.IsActive = true
	}
	if input.AvailabilityStatus == "" {
		space.AvailabilityStatus = constants.AVAILABILITY_AVAILABLE
	}

	if err := database.DB.Create(&space).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de créer l'espace", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, space)
}

func UpdateSpace(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	spaceId := c.Locals("spaceId").(int)
	input := c.Locals("updateInput").(model.UpdateSpaceInput)

	var space model.Space
	if err := database.DB.First(&space, spaceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Espace introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		space.Name = *input.Name
	}
	if input.Description != nil {
		space.Description = *input.Description
	}
	if input.Features != nil {
		space.Features = pq.StringArray(input.Features)
	}
	if input.Images != nil {
		space.Images = pq.StringArray(input.Images)
	}
	if input.HourlyPrice != nil {
		space.HourlyPrice = input.HourlyPrice
	}
	if input.DailyPrice != nil {
		space.DailyPrice = input.DailyPrice
	}
	if input.MonthlyPrice != nil {
		space.MonthlyPrice = input.MonthlyPrice
	}
	if input.YearlyPrice != nil {
		space.YearlyPrice = input.YearlyPrice
	}
	if input.MaxOccupants != nil {
		space.MaxOccupants = *input.MaxOccupants
	}
	if input.IsActive != nil {
		space.IsActive = *input.IsActive
	}
	if input.AvailabilityStatus != nil {
		space.AvailabilityStatus = *input.AvailabilityStatus
	}
	if input.DisplayOrder != nil {
		space.DisplayOrder = *input.DisplayOrder
	}
	if input.AdminNotes != nil {
		space.AdminNotes = input.AdminNotes
	}

	if err := helper.ValidateSpacePrices(space.Type, space.HourlyPrice, space.DailyPrice, space.MonthlyPrice); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tarification incomplète pour ce type d'espace", err)
	}

	if err := database.DB.Save(&space).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de mettre à jour l'espace", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, space)
}

func DeleteSpaces(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Space{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Suppression échouée", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Espaces supprimés",
	})
}

// DeleteSpaceImage détruit une image Cloudinary d'un espace et la retire de
// la liste.
func DeleteSpaceImage(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	type ImageInput struct {
		PublicID string `json:"publicId"`
	}
	var input ImageInput
	if err := c.BodyParser(&input); err != nil || input.PublicID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "publicId requis", err)
	}

	spaceId := c.Locals("inputId").(int)
	var space model.Space
	if err := database.DB.First(&space, spaceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Espace introuvable", err)
	}

	cld := helper.InitCloudinary()
	if _, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: input.PublicID}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Suppression Cloudinary échouée", err)
	}

	var kept pq.StringArray
	for _, img := range space.Images {
		if img != input.PublicID {
			kept = append(kept, img)
		}
	}
	space.Images = kept
	if err := database.DB.Save(&space).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de mettre à jour l'espace", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, space)
}
