package validate

import (
	"errors"
	"strconv"

	"nzoo_immo/constants"
	"nzoo_immo/helper"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateSpace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSpaceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation échouée", err)
		}

		if err := helper.ValidateSpacePrices(input.Type, input.HourlyPrice, input.DailyPrice, input.MonthlyPrice); err != nil {
			return utils.ErrorResponse(c, 400, "Tarification incomplète pour ce type d'espace", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateSpace(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateSpaceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation échouée", err)
		}

		c.Locals("updateInput", input)
		c.Locals("spaceId", valueKey)
		return c.Next()
	}
}
