package validate

import (
	"fmt"

	"catering_manager/model"

	"github.com/gofiber/fiber/v2"
)

func SetAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetAvailabilityInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputSetAvailability", input)

		return c.Next()
	}
}
