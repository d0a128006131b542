package router

import (
	"catering_manager/handler"
	"catering_manager/middleware"
	"catering_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)

	// Część publiczna: formularz zamówienia i śledzenie
	zamowienia := v1.Group("/zamowienia", logger.New())
	zamowienia.Post("/", validate.CreateOrder(), handler.CreateOrder)
	zamowienia.Get("/:code", handler.GetOrderByCode)
	zamowienia.Get("/:code/wiadomosci", handler.GetMessages)
	zamowienia.Get("/:code/chat", websocket.New(handler.ChatWebSocket))

	menu := v1.Group("/menu", logger.New())
	menu.Get("/", handler.GetMenu)

	dostepnosc := v1.Group("/dostepnosc", logger.New())
	dostepnosc.Get("/", handler.GetAvailableDates)

	oceny := v1.Group("/oceny", logger.New())
	oceny.Post("/", validate.SubmitRating(), handler.SubmitRating)
	oceny.Get("/:code", handler.GetRating)

	wiadomosci := v1.Group("/wiadomosci", logger.New())
	wiadomosci.Post("/", validate.PostMessage(), handler.PostMessage)
	wiadomosci.Get("/:code", handler.GetMessages)

	// Panel administracyjny
	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:code", middleware.Protected(), handler.GetOrderByCode)
	order.Patch("/:code/status", middleware.Protected(), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)

	menuItem := v1.Group("/menu-item", logger.New())
	menuItem.Get("/", middleware.Protected(), handler.GetMenuItems)
	menuItem.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menuItem.Put("/:menuItemId", middleware.Protected(), validate.GetById("menuItemId"), validate.UpdateMenuItem(), handler.UpdateMenuItem)
	menuItem.Post("/:menuItemId/image", middleware.Protected(), validate.GetById("menuItemId"), handler.UploadMenuItemImage)

	availability := v1.Group("/availability", logger.New())
	availability.Get("/", middleware.Protected(), handler.GetAvailability)
	availability.Post("/", middleware.Protected(), validate.SetAvailability(), handler.SetAvailability)
	availability.Delete("/:date", middleware.Protected(), handler.DeleteAvailability)

	rating := v1.Group("/rating", logger.New())
	rating.Post("/reply", middleware.Protected(), validate.AdminReply(), handler.AdminReplyRating)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetStatistics)
}
