package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lensycam/internal/database"
	"lensycam/internal/domain"
	"lensycam/internal/repository"
)

func floatp(v float64) *float64 { return &v }
func strp(s string) *string     { return &s }

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "camera_rental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	cameras := repository.NewCameraRepository(db)

	log.Println("Creating admin user...")
	if _, err := users.GetByUsername(ctx, "admin"); errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		admin := domain.User{
			Username:     "admin",
			PasswordHash: string(hash),
			Email:        "admin@lensycam.local",
		}
		if err := users.Create(ctx, &admin); err != nil {
			log.Fatal("admin create failed: ", err)
		}
		log.Println("Admin created (admin / admin123 - change the password)")
	} else if err != nil {
		log.Fatal(err)
	} else {
		log.Println("Admin already exists, skipping")
	}

	existing, err := cameras.List(ctx, repository.CameraFilter{})
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Printf("Found %d cameras, skipping sample inventory", len(existing))
		return
	}

	log.Println("Creating sample cameras...")
	sample := []domain.Camera{
		{
			Name: "Sony A7 IV", Brand: "Sony", Model: "ILCE-7M4", Category: "mirrorless",
			SerialNumber: strp("SN-A74-0001"), DailyRate: 150, HourlyRate: floatp(15),
			Status: domain.CameraAvailable, Condition: "excellent",
			Description: "33MP full-frame hybrid body",
		},
		{
			Name: "Canon EOS R6 Mark II", Brand: "Canon", Model: "R6 II", Category: "mirrorless",
			SerialNumber: strp("SN-R62-0001"), DailyRate: 140, HourlyRate: floatp(14),
			Status: domain.CameraAvailable, Condition: "excellent",
		},
		{
			Name: "Fujifilm X-T5", Brand: "Fujifilm", Model: "X-T5", Category: "mirrorless",
			SerialNumber: strp("SN-XT5-0001"), DailyRate: 110, HourlyRate: floatp(12),
			Status: domain.CameraAvailable, Condition: "good",
		},
		{
			Name: "Canon EOS 5D Mark IV", Brand: "Canon", Model: "5D IV", Category: "dslr",
			SerialNumber: strp("SN-5D4-0001"), DailyRate: 100,
			Status: domain.CameraAvailable, Condition: "good",
		},
		{
			Name: "DJI Pocket 3", Brand: "DJI", Model: "Osmo Pocket 3", Category: "action",
			DailyRate: 60, HourlyRate: floatp(8),
			Status: domain.CameraMaintenance, Condition: "fair",
			Description: "Gimbal camera, in for stabilizer service",
		},
	}
	for i := range sample {
		if err := cameras.Create(ctx, &sample[i]); err != nil {
			log.Fatal("camera create failed: ", err)
		}
	}
	log.Printf("Seeded %d cameras", len(sample))
}
