package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pricna/internal/database"
	"pricna/internal/mailer"
	"pricna/internal/middleware"
	"pricna/internal/modules/auth"
	"pricna/internal/modules/events"
	"pricna/internal/modules/inquiry"
	"pricna/internal/modules/reservation"
	jwtsvc "pricna/internal/pkg/jwt"
	"pricna/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Fatal("ADMIN_USERNAME / ADMIN_PASSWORD_HASH is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	mail := buildMailer()
	hub := events.NewHub()

	authService := auth.NewService(adminUsername, adminPasswordHash, j)
	authHandler := auth.NewHandler(authService)

	reservationService := reservation.NewService(reservationRepo, mail, hub)
	reservationHandler := reservation.NewHandler(reservationService)

	inquiryService := inquiry.NewService(inquiryRepo, mail)
	inquiryHandler := inquiry.NewHandler(inquiryService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		reservationHandler.RegisterPublicRoutes(v1)
		inquiryHandler.RegisterPublicRoutes(v1)

		// admin
		admin := v1.Group("/")
		admin.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterAdminRoutes(admin)
			reservationHandler.RegisterAdminRoutes(admin)
			inquiryHandler.RegisterAdminRoutes(admin)
			eventsHandler.RegisterAdminRoutes(admin)
		}
	}

	addr := ":" + envOr("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

// buildMailer wires the SMTP relay, or falls back to console logging when no
// host is configured so local development works without a sandbox account.
func buildMailer() mailer.Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST is empty, mail goes to the console")
		return mailer.NewConsoleMailer()
	}

	return mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:      host,
		Port:      envOr("SMTP_PORT", "2525"),
		Username:  os.Getenv("SMTP_USER"),
		Password:  os.Getenv("SMTP_PASS"),
		From:      envOr("EMAIL_RESERVATIONS", "rezervace@pricna.cz"),
		StaffAddr: envOr("EMAIL_STAFF", "info@pricna.cz"),
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
