// pricnactl is the back-office CLI: password hashing for the admin
// credential and demo data seeding for local development.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"pricna/internal/database"
	"pricna/internal/domain"
	"pricna/internal/pkg/pricing"
	"pricna/internal/repository"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "pricnactl",
		Short: "Back-office tooling for the Příčná reservation API",
	}
	root.AddCommand(hashPasswordCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill the local database with demo reservations and inquiries",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := os.Getenv("DATABASE_URL")
			if dsn == "" {
				dsn = "pricna.db"
			}

			db, err := database.Connect(dsn)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			reservationRepo := repository.NewReservationRepository(db)
			inquiryRepo := repository.NewInquiryRepository(db)
			ctx := cmd.Context()

			demo := []struct {
				date  string
				slots []string
				name  string
			}{
				{"2026-09-07", []string{"09:00", "10:00"}, "Jana Nováková"},
				{"2026-09-07", []string{"14:00"}, "Petr Svoboda"},
				{"2026-09-08", []string{"07:00", "08:00", "09:00", "10:00", "11:00"}, "Martin Dvořák"},
			}

			for _, d := range demo {
				price, err := pricing.Price(len(d.slots))
				if err != nil {
					return err
				}
				r := &domain.Reservation{
					Date:          d.date,
					TimeSlots:     d.slots,
					DurationHours: len(d.slots),
					TotalPrice:    price,
					Name:          d.name,
					Email:         "demo@pricna.cz",
					Phone:         "+420 777 000 000",
					Status:        domain.ReservationConfirmed,
				}
				if err := reservationRepo.Create(ctx, r); err != nil {
					log.Printf("seed: reservation %s %v skipped: %v", d.date, d.slots, err)
					continue
				}
				log.Printf("seed: reservation #%d %s %v", r.ID, r.Date, r.TimeSlots)
			}

			i := &domain.Inquiry{
				Type:    domain.InquiryOffice,
				Name:    "Eva Černá",
				Email:   "demo@pricna.cz",
				Message: "Dobrý den, máte volnou kancelář od října?",
			}
			if err := inquiryRepo.Create(ctx, i); err != nil {
				return err
			}
			log.Printf("seed: inquiry #%d", i.ID)

			return nil
		},
	}
}
