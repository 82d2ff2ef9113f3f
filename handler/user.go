package handler

import (
	"errors"

	"nzoo_immo/constants"
	"nzoo_immo/database"
	"nzoo_immo/helper"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetUsers(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	filter := new(model.FilterUser)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.AdminUser{})
	if filter.Role != nil {
		db = db.Where("role = ?", *filter.Role)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		db = db.Where("username ILIKE ? OR email ILIKE ? OR full_name ILIKE ?", like, like, like)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var users model.AdminUsers
	if err := db.Order("created_at asc").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateUser(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateUserInput)

	existing, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Nom d'utilisateur déjà pris", nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var user model.AdminUser
	copier.Copy(&user, &input)
	user.Password = hashed
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	} else {
		user.IsActive = true
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de créer le compte", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func UpdateUser(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	userId := c.Locals("userId").(int)
	input := c.Locals("updateInput").(model.UpdateUserInput)

	var user model.AdminUser
	if err := database.DB.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Compte introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Garde-fou: ne jamais retirer le dernier admin actif.
	if user.Role == constants.ROLE_ADMIN &&
		((input.Role != nil && *input.Role != constants.ROLE_ADMIN) ||
			(input.IsActive != nil && !*input.IsActive)) {
		var admins int64
		database.DB.Model(&model.AdminUser{}).
			Where("role = ? AND is_active = ? AND id <> ?", constants.ROLE_ADMIN, true, user.ID).
			Count(&admins)
		if admins == 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Impossible de désactiver le dernier administrateur", nil)
		}
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de mettre à jour le compte", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func DeleteUsers(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	for _, id := range input.IDs {
		if id == claim.UserId {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Impossible de supprimer son propre compte", nil)
		}
	}

	if err := database.DB.Delete(&model.AdminUser{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Suppression échouée", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Comptes supprimés",
	})
}

// ChangePassword change le mot de passe du compte connecté après
// vérification de l'ancien.
func ChangePassword(c *fiber.Ctx) error {
	_, user, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}

	input := c.Locals("passwordInput").(model.ChangePasswordInput)

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, nil)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de changer le mot de passe", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Mot de passe mis à jour",
	})
}
