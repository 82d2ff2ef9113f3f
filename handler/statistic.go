package handler

import (
	"time"

	"nzoo_immo/constants"
	"nzoo_immo/database"
	"nzoo_immo/helper"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats alimente les cartes du tableau de bord: volumes par statut,
// chiffre d'affaires encaissé et croissance jour/jour des créations.
func GetAdminStats(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	db := database.DB

	byStatus := make(map[string]int64, len(constants.ReservationStatuses))
	for _, status := range constants.ReservationStatuses {
		var n int64
		db.Model(&model.Reservation{}).Where("status = ?", status).Count(&n)
		byStatus[status] = n
	}

	var revenue float64
	db.Model(&model.Reservation{}).
		Where("payment_status = ?", constants.PAYMENT_STATUS_PAID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var createdToday, createdYesterday int64
	db.Model(&model.Reservation{}).Where("created_at >= ?", todayStart).Count(&createdToday)
	db.Model(&model.Reservation{}).
		Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).
		Count(&createdYesterday)

	var activeSpaces int64
	db.Model(&model.Space{}).Where("is_active = ?", true).Count(&activeSpaces)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservationsByStatus": byStatus,
		"revenue":              revenue,
		"createdToday":         createdToday,
		"createdYesterday":     createdYesterday,
		"growthPercent":        utils.CalculateGrowth(float64(createdToday), float64(createdYesterday)),
		"activeSpaces":         activeSpaces,
	})
}
