package handler

import (
	"time"

	"catering_manager/model"
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder przyjmuje zamówienie publiczne. Zwraca 201 z kodem zamówienia,
// po którym klient może je później śledzić.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("inputCreateOrder").(model.CreateOrderInput)

	order, err := orderService.CreateOrder(c.Context(), input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": order.PublicCode,
	})
}

// GetOrderByCode zwraca szczegóły zamówienia wraz z pozycjami, wiadomościami
// i ewentualną oceną.
func GetOrderByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	order, err := orderService.GetOrder(c.Context(), code)
	if err != nil {
		return serviceError(c, err)
	}

	messages, err := messageService.ListMessages(c.Context(), code)
	if err != nil {
		return serviceError(c, err)
	}
	rating, err := ratingService.GetRating(c.Context(), code)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":    order,
		"messages": messages,
		"rating":   rating,
	})
}

// GetOrders listuje zamówienia dla panelu administracyjnego z filtrem po
// statusie i zakresie dat.
func GetOrders(c *fiber.Ctx) error {
	var filter model.OrderFilter

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if from := c.Query("dateFrom"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.DateFrom = &t
		}
	}
	if to := c.Query("dateTo"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.DateTo = &t
		}
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = &page
	}

	orders, totalCount, err := orderService.ListOrders(c.Context(), filter)
	if err != nil {
		return serviceError(c, err)
	}

	response := model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// UpdateOrderStatus zmienia status zamówienia z panelu administracyjnego.
func UpdateOrderStatus(c *fiber.Ctx) error {
	code := c.Params("code")
	input := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)

	order, err := orderService.TransitionStatus(c.Context(), code, input)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
