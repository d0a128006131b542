package handler

import (
	"errors"
	"time"

	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/repository"
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAvailableDates zwraca nadchodzące dostępne terminy dla formularza
// publicznego (od dziś włącznie).
func GetAvailableDates(c *fiber.Ctx) error {
	today := repository.DateOnly(time.Now())
	entries, err := availabilityRepo.ListAvailableFrom(c.Context(), today)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

// GetAvailability listuje cały kalendarz (również dni niedostępne) dla panelu.
func GetAvailability(c *fiber.Ctx) error {
	entries, err := availabilityRepo.List(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

// SetAvailability tworzy lub nadpisuje wpis kalendarza dla jednego dnia.
func SetAvailability(c *fiber.Ctx) error {
	input := c.Locals("inputSetAvailability").(model.SetAvailabilityInput)

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	entry := model.Availability{
		Date:        repository.DateOnly(date),
		IsAvailable: *input.IsAvailable,
		Note:        input.Note,
	}
	if err := availabilityRepo.Upsert(c.Context(), &entry); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

// DeleteAvailability usuwa wpis kalendarza dla dnia z parametru trasy.
func DeleteAvailability(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := availabilityRepo.Delete(c.Context(), date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AVAILABILITY_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": c.Params("date")})
}
