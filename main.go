package main

import (
	"log"

	"catering_manager/config"
	"catering_manager/database"
	"catering_manager/handler"
	"catering_manager/helper"
	"catering_manager/repository"
	"catering_manager/router"
	"catering_manager/service"
	"catering_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	cld := helper.InitCloudinary()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("cld", cld)
		return c.Next()
	})

	database.ConnectDB()
	stores := repository.NewGormStores(database.DB)

	notifier := utils.NewEmailNotifier()
	orderService := service.NewOrderService(
		stores.Orders, stores.MenuItems, stores.Availability, notifier,
		config.ConfigInt("MIN_PEOPLE", 10),
		config.ConfigInt("MAX_PEOPLE", 500),
	)
	ratingService := service.NewRatingService(stores.Orders, stores.Ratings)
	messageService := service.NewMessageService(stores.Orders, stores.Messages, handler.RedisBroadcaster{})
	handler.Init(orderService, ratingService, messageService, stores.MenuItems, stores.Availability)

	reminder := helper.StartDeliveryReminder(stores.Orders, notifier)
	if reminder != nil {
		defer reminder.Shutdown()
	}
	cleanup := helper.StartAvailabilityCleanup(stores.Availability)
	if cleanup != nil {
		defer cleanup.Stop()
	}

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
