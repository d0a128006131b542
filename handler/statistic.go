package handler

import (
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStatistics zasila pulpit panelu: liczby zamówień wg statusu oraz
// przychód z dostarczonych zamówień.
func GetStatistics(c *fiber.Ctx) error {
	stats, err := orderService.Stats(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
