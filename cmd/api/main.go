package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lensycam/internal/calendar"
	"lensycam/internal/database"
	"lensycam/internal/middleware"
	"lensycam/internal/modules/auth"
	"lensycam/internal/modules/availability"
	"lensycam/internal/modules/camera"
	"lensycam/internal/modules/customer"
	"lensycam/internal/modules/dashboard"
	"lensycam/internal/modules/rental"
	jwtsvc "lensycam/internal/pkg/jwt"
	"lensycam/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "camera_rental.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	cameraRepo := repository.NewCameraRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	rentalRepo := repository.NewRentalRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	var mirror rental.CalendarMirror
	if cal := newCalendarMirror(); cal != nil {
		mirror = cal
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	cameraService := camera.NewService(cameraRepo, rentalRepo)
	cameraHandler := camera.NewHandler(cameraService)

	customerService := customer.NewService(customerRepo, rentalRepo, cameraRepo)
	customerHandler := customer.NewHandler(customerService)

	rentalService := rental.NewService(rentalRepo, cameraRepo, customerRepo, mirror)
	rentalHandler := rental.NewHandler(rentalService)

	availabilityService := availability.NewService(cameraRepo, rentalRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	dashboardService := dashboard.NewService(rentalRepo, cameraRepo, customerRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			cameraHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			rentalHandler.RegisterRoutes(protected)
			availabilityHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// newCalendarMirror builds the Google Calendar client when both env vars are
// set. The service runs fine without it; rentals just stay unmirrored.
func newCalendarMirror() *calendar.Service {
	calendarID := os.Getenv("GOOGLE_CALENDAR_ID")
	keyFile := os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")
	if calendarID == "" || keyFile == "" {
		log.Println("calendar mirror disabled: GOOGLE_CALENDAR_ID or GOOGLE_SERVICE_ACCOUNT_FILE not set")
		return nil
	}

	cal, err := calendar.New(context.Background(), keyFile, calendarID)
	if err != nil {
		log.Printf("calendar mirror disabled: %v", err)
		return nil
	}
	return cal
}
