package config

import (
	"Pantry-Backend/internal/api/handlers"
	"Pantry-Backend/internal/api/routes"
	"Pantry-Backend/internal/middleware"
	"Pantry-Backend/internal/utils"
	"Pantry-Backend/internal/utils/mailing"
	"Pantry-Backend/internal/utils/storage"
	"Pantry-Backend/pkg/barcode"
	"Pantry-Backend/pkg/food"
	"Pantry-Backend/pkg/jwt"
	"Pantry-Backend/pkg/notification"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Location is the timezone used to decide what "today" is.
func Location() *time.Location {
	name := utils.GetConfig("APP_TIMEZONE")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf("unknown APP_TIMEZONE %q, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

func NewNotificationService(db *gorm.DB) notification.NotificationService {
	return notification.NewNotificationService(
		notification.NewNotificationRepository(db),
		food.NewFoodRepository(db),
		mailing.NewMailer(mailing.LoadMailConfig()),
		Location(),
	)
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	location := Location()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   location.String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	barcodeRepository := barcode.NewBarcodeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	foodService := food.NewFoodService(foodRepository, s3, location)
	barcodeService := barcode.NewBarcodeService(barcodeRepository, barcode.NewProductClient(utils.GetConfig("BARCODE_API_URL")))
	notificationService := NewNotificationService(db)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	barcodeHandler := handlers.NewBarcodeHandler(barcodeService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator, location)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		FoodHandler:         foodHandler,
		BarcodeHandler:      barcodeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
