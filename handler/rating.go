package handler

import (
	"catering_manager/model"
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func SubmitRating(c *fiber.Ctx) error {
	input := c.Locals("inputSubmitRating").(model.SubmitRatingInput)

	rating, err := ratingService.SubmitRating(c.Context(), input)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, rating)
}

func GetRating(c *fiber.Ctx) error {
	code := c.Params("code")

	rating, err := ratingService.GetRating(c.Context(), code)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rating)
}

// AdminReplyRating dopisuje (lub nadpisuje) odpowiedź obsługi na ocenę.
func AdminReplyRating(c *fiber.Ctx) error {
	input := c.Locals("inputAdminReply").(model.AdminReplyInput)

	rating, err := ratingService.SubmitAdminReply(c.Context(), input)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rating)
}
