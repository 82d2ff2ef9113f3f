package handler

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"nzoo_immo/constants"
	"nzoo_immo/database"
	"nzoo_immo/helper"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func generateReservationCode() string {
	return "RES-" + strings.ToUpper(uuid.New().String()[:8])
}

func defaultTransactionId(paymentMethod string) string {
	prefix := map[string]string{
		constants.PAYMENT_ORANGE_MONEY: "OM",
		constants.PAYMENT_AIRTEL_MONEY: "AM",
		constants.PAYMENT_VISA:         "VISA",
		constants.PAYMENT_CASH:         "CASH",
	}[paymentMethod]
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
}

// CreateReservation est le parcours public de réservation: normalisation des
// dates, contrôle de capacité, recalcul du montant côté serveur, insertion,
// puis email de confirmation en best-effort (l'échec n'annule rien).
func CreateReservation(c *fiber.Ctx) error {
	if database.DB == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_NOT_CONFIGURED,
			errors.New("connexion base de données absente"))
	}

	input := c.Locals("createInput").(model.CreateReservationInput)
	rawStart := c.Locals("startDate").(time.Time)
	rawEnd := c.Locals("endDate").(time.Time)

	startDate, endDate := helper.ExpandReservationDates(input.SpaceType, rawStart, rawEnd)

	// L'abonnement persisté est celui qui sera réellement facturé.
	input.SubscriptionType = helper.NormalizeSubscription(input.SpaceType, input.SubscriptionType)

	// Tarifs et capacité: la ligne Space active fait foi, le catalogue
	// statique sert de repli si l'admin n'a pas encore créé l'espace.
	space, err := helper.GetActiveSpaceByType(database.DB, input.SpaceType)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var prices helper.PriceTable
	var maxOccupants int
	if space != nil {
		if space.AvailabilityStatus != constants.AVAILABILITY_AVAILABLE {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Cet espace n'est pas disponible à la réservation", nil)
		}
		prices = helper.PriceTableFromSpace(space)
		maxOccupants = space.MaxOccupants
	} else {
		info := helper.GetSpaceInfo(input.SpaceType, constants.LANG_FR)
		if info == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Type d'espace non reconnu", nil)
		}
		prices = helper.PriceTableFromInfo(info)
		maxOccupants = info.MaxOccupants
	}

	if input.Occupants < 1 || input.Occupants > maxOccupants {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("occupants doit être entre 1 et %d pour cet espace", maxOccupants), nil)
	}

	amount, err := helper.CalculateTotal(input.SpaceType, startDate, endDate, input.SubscriptionType, prices)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Impossible de calculer le montant", err)
	}

	// Le montant soumis par le client n'est jamais une source de vérité.
	if input.Amount != 0 && math.Abs(input.Amount-amount) > 0.009 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("amount soumis (%.2f) ne correspond pas au montant calculé (%.2f)", input.Amount, amount), nil)
	}

	transactionId := input.TransactionId
	if transactionId == "" {
		transactionId = defaultTransactionId(input.PaymentMethod)
	}

	var reservation model.Reservation
	copier.Copy(&reservation, &input)
	reservation.PublicCode = generateReservationCode()
	reservation.StartDate = utils.NewCustomDate(startDate)
	reservation.EndDate = utils.NewCustomDate(endDate)
	reservation.Amount = amount
	reservation.TransactionId = transactionId
	reservation.Status = helper.InitialStatus(input.PaymentMethod)
	reservation.PaymentStatus = constants.PAYMENT_STATUS_PENDING
	if space != nil {
		reservation.SpaceId = &space.ID
	}

	if err := database.DB.Create(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible d'enregistrer la réservation", err)
	}

	helper.PublishReservationEvent(reservation.PublicCode, reservation.Status)

	emailSent := sendReservationConfirmation(&reservation)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"reservation": reservation,
		"emailSent":   emailSent,
	})
}

var sendConfirmationEmail = utils.SendReservationConfirmationEmail

// sendReservationConfirmation envoie l'email après persistance. L'échec ne
// remonte jamais: la réservation existe, l'appelant reçoit emailSent=false.
func sendReservationConfirmation(reservation *model.Reservation) bool {
	data := utils.ReservationConfirmationData{
		ReservationCode: reservation.PublicCode,
		FullName:        reservation.FullName,
		SpaceTitle:      spaceTitle(reservation.SpaceType),
		StartDate:       reservation.StartDate.String(),
		EndDate:         reservation.EndDate.String(),
		Occupants:       reservation.Occupants,
		Amount:          reservation.Amount,
		PaymentMethod:   reservation.PaymentMethod,
		Company:         companyOrDefault(reservation.Company),
		Activity:        reservation.Activity,
		DetailLink:      fmt.Sprintf("%s/reservations/%s", utils.AppURL(), reservation.PublicCode),
	}

	if err := sendConfirmationEmail(reservation.Email, data); err != nil {
		log.Printf("Email de confirmation non envoyé pour %s: %v", reservation.PublicCode, err)
		return false
	}
	return true
}

func spaceTitle(spaceType string) string {
	if info := helper.GetSpaceInfo(spaceType, constants.LANG_FR); info != nil {
		return info.Title
	}
	return spaceType
}

func companyOrDefault(company *string) string {
	if company == nil || *company == "" {
		return "Non spécifiée"
	}
	return *company
}

// GetReservations liste les réservations pour le tableau de bord admin.
func GetReservations(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	filter := new(model.FilterReservation)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Reservation{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.SpaceType != nil {
		db = db.Where("space_type = ?", *filter.SpaceType)
	}
	if filter.PaymentMethod != nil {
		db = db.Where("payment_method = ?", *filter.PaymentMethod)
	}
	if filter.PaymentStatus != nil {
		db = db.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.StartDate != nil {
		db = db.Where("start_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		db = db.Where("end_date <= ?", *filter.EndDate)
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		db = db.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR public_code ILIKE ?", like, like, like, like)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var reservations model.Reservations
	if err := db.Order("created_at desc").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       reservations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetReservationByCode est la consultation publique par référence: champs
// sensibles (notes admin) jamais exposés. Un admin authentifié reçoit
// l'enregistrement complet.
func GetReservationByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var reservation model.Reservation
	if err := database.DB.Where("public_code = ?", code).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Réservation introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if claim, _, ok := helper.GetInfoUserFromToken(c); ok && claim.Role == constants.ROLE_ADMIN {
		return utils.SuccessResponse(c, fiber.StatusOK, reservation)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation.Public())
}

// UpdateReservationStatus applique un changement de statut via les règles du
// cycle de vie. Accessible à tout compte authentifié actif (admin ou user).
func UpdateReservationStatus(c *fiber.Ctx) error {
	_, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}

	reservationId := c.Locals("reservationId").(int)
	input := c.Locals("statusInput").(model.UpdateReservationStatusInput)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Réservation introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.CanTransition(reservation.Status, input.Status); err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Transition de statut refusée", err)
	}

	if reservation.Status != input.Status {
		if err := database.DB.Model(&reservation).Update("status", input.Status).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de mettre à jour le statut", err)
		}
		reservation.Status = input.Status
		helper.PublishReservationEvent(reservation.PublicCode, reservation.Status)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// UpdateReservation modifie les champs d'une réservation avec contrôle
// d'accès par champ: les champs hors droits sont ignorés et signalés à
// l'appelant dans ignoredFields.
func UpdateReservation(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}

	reservationId := c.Locals("reservationId").(int)
	input := c.Locals("updateInput").(model.UpdateReservationInput)

	ignored := helper.FilterEditableFields(&input, claim.Role)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Réservation introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Status != nil {
		if err := helper.CanTransition(reservation.Status, *input.Status); err != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Transition de statut refusée", err)
		}
	}

	statusChanged := applyReservationUpdate(&reservation, &input)

	if reservation.EndDate.BeforeDate(reservation.StartDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate doit être postérieure ou égale à startDate", nil)
	}

	if err := database.DB.Save(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de mettre à jour la réservation", err)
	}

	if statusChanged {
		helper.PublishReservationEvent(reservation.PublicCode, reservation.Status)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservation":   reservation,
		"ignoredFields": ignored,
	})
}

func applyReservationUpdate(reservation *model.Reservation, input *model.UpdateReservationInput) bool {
	if input.FullName != nil {
		reservation.FullName = *input.FullName
	}
	if input.Email != nil {
		reservation.Email = *input.Email
	}
	if input.Phone != nil {
		reservation.Phone = *input.Phone
	}
	if input.Company != nil {
		reservation.Company = input.Company
	}
	if input.Activity != nil {
		reservation.Activity = *input.Activity
	}
	if input.Address != nil {
		reservation.Address = input.Address
	}
	if input.SpaceType != nil {
		reservation.SpaceType = *input.SpaceType
	}
	if input.StartDate != nil {
		if d, err := utils.ParseCustomDate(*input.StartDate); err == nil {
			reservation.StartDate = d
		}
	}
	if input.EndDate != nil {
		if d, err := utils.ParseCustomDate(*input.EndDate); err == nil {
			reservation.EndDate = d
		}
	}
	if input.Occupants != nil {
		reservation.Occupants = *input.Occupants
	}
	if input.SubscriptionType != nil {
		reservation.SubscriptionType = *input.SubscriptionType
	}
	if input.Amount != nil {
		reservation.Amount = *input.Amount
	}
	if input.PaymentMethod != nil {
		reservation.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentStatus != nil {
		reservation.PaymentStatus = *input.PaymentStatus
	}
	if input.Notes != nil {
		reservation.Notes = input.Notes
	}
	if input.AdminNotes != nil {
		reservation.AdminNotes = input.AdminNotes
	}

	statusChanged := false
	if input.Status != nil && reservation.Status != *input.Status {
		reservation.Status = *input.Status
		statusChanged = true
	}
	return statusChanged
}

// DeleteReservations supprime des réservations par lot (admin uniquement).
func DeleteReservations(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Reservation{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Suppression échouée", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Réservations supprimées",
	})
}

// SweepReservations déclenche manuellement le balayage d'expiration et
// retourne le nombre de réservations mises à jour.
func SweepReservations(c *fiber.Ctx) error {
	claim, _, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Compte introuvable ou désactivé", nil)
	}
	if claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ADMIN_ONLY, nil)
	}

	count, err := helper.SweepExpiredReservations(database.DB, time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Balayage échoué", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"updated": count,
	})
}
