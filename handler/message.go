package handler

import (
	"catering_manager/model"
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func PostMessage(c *fiber.Ctx) error {
	input := c.Locals("inputPostMessage").(model.PostMessageInput)

	msg, err := messageService.PostMessage(c.Context(), input)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, msg)
}

func GetMessages(c *fiber.Ctx) error {
	code := c.Params("code")

	messages, err := messageService.ListMessages(c.Context(), code)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}
