package validate

import (
	"errors"
	"strconv"
	"time"

	"nzoo_immo/constants"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation valide l'entrée du parcours de réservation avant toute
// tentative de persistance. Chaque message nomme le champ fautif.
func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation échouée", err)
		}

		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "startDate invalide (format attendu YYYY-MM-DD)", err)
		}

		var endDate time.Time
		if input.EndDate != "" {
			endDate, err = time.Parse("2006-01-02", input.EndDate)
			if err != nil {
				return utils.ErrorResponse(c, 400, "endDate invalide (format attendu YYYY-MM-DD)", err)
			}
			if endDate.Before(startDate) {
				return utils.ErrorResponse(c, 400, "endDate doit être postérieure ou égale à startDate", nil)
			}
		}

		c.Locals("createInput", input)
		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		return c.Next()
	}
}

func UpdateReservation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation échouée", err)
		}

		if input.StartDate != nil {
			if _, err := time.Parse("2006-01-02", *input.StartDate); err != nil {
				return utils.ErrorResponse(c, 400, "startDate invalide (format attendu YYYY-MM-DD)", err)
			}
		}
		if input.EndDate != nil {
			if _, err := time.Parse("2006-01-02", *input.EndDate); err != nil {
				return utils.ErrorResponse(c, 400, "endDate invalide (format attendu YYYY-MM-DD)", err)
			}
		}

		c.Locals("updateInput", input)
		c.Locals("reservationId", valueKey)
		return c.Next()
	}
}

func UpdateReservationStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateReservationStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation échouée", err)
		}

		c.Locals("statusInput", input)
		c.Locals("reservationId", valueKey)
		return c.Next()
	}
}
