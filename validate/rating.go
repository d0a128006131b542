package validate

import (
	"fmt"

	"catering_manager/model"

	"github.com/gofiber/fiber/v2"
)

func SubmitRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitRatingInput

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

		c.Locals("inputSubmitRating", input)

		return c.Next()
	}
}

func AdminReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminReplyInput

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

		c.Locals("inputAdminReply", input)

		return c.Next()
	}
}
