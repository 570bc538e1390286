package routes

import (
	"Pantry-Backend/internal/api/handlers"
	"Pantry-Backend/internal/middleware"
	"Pantry-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	FoodHandler         handlers.FoodHandler
	BarcodeHandler      handlers.BarcodeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.FoodItems()
	c.Barcodes()
	c.Notifications()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	// Static paths first so they are not captured by /:id
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Get("/calendar", c.FoodHandler.GetCalendar)
	foodItems.Get("/calendar/:date", c.FoodHandler.GetCalendarDate)
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	foodItems.Post("/:id/consume", c.FoodHandler.ConsumeFoodItem)
}

func (c *Config) Barcodes() {
	barcodes := c.App.Group("/api/v1/barcodes", c.Middleware.AuthMiddleware(c.JWTService))
	barcodes.Get("/:code", c.BarcodeHandler.LookupBarcode)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("/settings", c.NotificationHandler.GetSettings)
	notifications.Put("/settings", c.NotificationHandler.UpdateSettings)
	notifications.Post("/test", c.NotificationHandler.SendTestReminder)
}
