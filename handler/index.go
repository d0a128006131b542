package handler

import (
	"errors"

	"catering_manager/repository"
	"catering_manager/service"
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	orderService     *service.OrderService
	ratingService    *service.RatingService
	messageService   *service.MessageService
	menuRepo         repository.MenuItemRepository
	availabilityRepo repository.AvailabilityRepository
)

// Init wpina usługi do handlerów. Wołane raz w main oraz w testach
// (tam z magazynem w pamięci zamiast bazy).
func Init(
	orders *service.OrderService,
	ratings *service.RatingService,
	messages *service.MessageService,
	menu repository.MenuItemRepository,
	availability repository.AvailabilityRepository,
) {
	orderService = orders
	ratingService = ratings
	messageService = messages
	menuRepo = menu
	availabilityRepo = availability
}

// serviceError tłumaczy błędy warstwy usług na kody HTTP.
func serviceError(c *fiber.Ctx, err error) error {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		if len(validation.Details) > 0 {
			return utils.ErrorResponseWithDetails(c, fiber.StatusBadRequest, validation.Message, validation.Details)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validation.Message, errors.New(validation.Code))
	}
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound.Message, nil)
	}
	var conflict *service.StateConflictError
	if errors.As(err, &conflict) {
		return utils.ErrorResponse(c, fiber.StatusConflict, conflict.Message, nil)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Wystąpił błąd serwera", err)
}
