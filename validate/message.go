package validate

import (
	"fmt"

	"catering_manager/model"

	"github.com/gofiber/fiber/v2"
)

func PostMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PostMessageInput

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

		c.Locals("inputPostMessage", input)

		return c.Next()
	}
}
