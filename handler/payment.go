package handler

import (
	"errors"
	"fmt"
	"net/url"

	"nzoo_immo/constants"
	"nzoo_immo/database"
	"nzoo_immo/helper"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePayment initie le paiement d'une réservation en attente et retourne
// l'URL de checkout du prestataire. Le cash ne passe jamais ici.
func CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("paymentInput").(model.CreatePaymentInput)

	var reservation model.Reservation
	if err := database.DB.
		Where("public_code = ? AND status = ?", input.ReservationCode, constants.RESERVATION_PENDING).
		First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Réservation introuvable ou déjà réglée", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if reservation.PaymentStatus == constants.PAYMENT_STATUS_PAID {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Réservation déjà payée", nil)
	}

	cinetpay := NewCinetPay()
	req := model.PaymentRequest{
		Amount:        reservation.Amount,
		Currency:      "USD",
		Method:        input.Method,
		TxnRef:        reservation.TransactionId,
		Description:   fmt.Sprintf("Réservation %s - Nzoo Immo", reservation.PublicCode),
		CustomerName:  reservation.FullName,
		CustomerEmail: reservation.Email,
		CustomerPhone: reservation.Phone,
	}

	paymentUrl, err := cinetpay.BuildPaymentUrl(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de créer l'URL de paiement", err)
	}

	if reservation.PaymentMethod != input.Method {
		database.DB.Model(&reservation).Update("payment_method", input.Method)
	}

	return c.JSON(fiber.Map{
		"message":         "Paiement initié",
		"paymentUrl":      paymentUrl,
		"transactionId":   reservation.TransactionId,
		"reservationCode": reservation.PublicCode,
	})
}

// PaymentReturn est le retour navigateur après checkout: on vérifie la
// signature puis on redirige vers la page de succès ou d'échec.
func PaymentReturn(c *fiber.Ctx) error {
	cinetpay := NewCinetPay()

	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	result := cinetpay.VerifyCallback(query)

	if result.IsSuccess {
		markReservationPaid(result.TxnRef)

		var reservation model.Reservation
		database.DB.Where("transaction_id = ?", result.TxnRef).First(&reservation)
		return c.Redirect(fmt.Sprintf("%s/reservation-succes?code=%s", utils.AppURL(), reservation.PublicCode))
	}

	// Échec ou annulation: la réservation reste pending, jamais supprimée
	return c.Redirect(fmt.Sprintf("%s/reservation-echec?reason=%s", utils.AppURL(), url.QueryEscape(result.Message)))
}

// PaymentNotify est la notification serveur-à-serveur du prestataire.
func PaymentNotify(c *fiber.Ctx) error {
	cinetpay := NewCinetPay()

	query, _ := url.ParseQuery(string(c.Body()))
	if len(query) == 0 {
		query, _ = url.ParseQuery(string(c.Request().URI().QueryString()))
	}

	result := cinetpay.VerifyCallback(query)
	if !result.IsSuccess {
		if result.TxnRef != "" {
			database.DB.Model(&model.Reservation{}).
				Where("transaction_id = ? AND payment_status = ?", result.TxnRef, constants.PAYMENT_STATUS_PENDING).
				Update("payment_status", constants.PAYMENT_STATUS_FAILED)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": result.Message})
	}

	markReservationPaid(result.TxnRef)
	return c.JSON(fiber.Map{"message": "OK"})
}

// markReservationPaid passe payment_status à paid et confirme la réservation
// si elle attendait le paiement.
func markReservationPaid(txnRef string) {
	var reservation model.Reservation
	if err := database.DB.Where("transaction_id = ?", txnRef).First(&reservation).Error; err != nil {
		return
	}

	database.DB.Model(&reservation).Update("payment_status", constants.PAYMENT_STATUS_PAID)

	if reservation.Status == constants.RESERVATION_PENDING {
		if err := helper.CanTransition(reservation.Status, constants.RESERVATION_CONFIRMED); err == nil {
			database.DB.Model(&reservation).Update("status", constants.RESERVATION_CONFIRMED)
			helper.PublishReservationEvent(reservation.PublicCode, constants.RESERVATION_CONFIRMED)
		}
	}
}
