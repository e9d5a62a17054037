package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"tatvaops/internal/database"
	"tatvaops/internal/domain"
	"tatvaops/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tatvaops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to keep foreign keys happy)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM session_flags")
	db.Exec("DELETE FROM vendor_selections")
	db.Exec("DELETE FROM milestones")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)
	vendors := repository.NewVendorRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := &domain.User{
		Email:        "rahul@tatvaops.in",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
		Name:         "Rahul Sharma",
		Phone:        "+91 98765 43210",
	}
	if err := users.Create(ctx, customer); err != nil {
		log.Fatal("seed customer:", err)
	}
	log.Println("Customer created: rahul@tatvaops.in / customer123")

	vendorHash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)
	vendorUser := &domain.User{
		Email:        "ops@apexconstruction.in",
		PasswordHash: string(vendorHash),
		Role:         domain.RoleVendor,
		Name:         "Apex Site Office",
		Phone:        "+91 98765 00001",
	}
	if err := users.Create(ctx, vendorUser); err != nil {
		log.Fatal("seed vendor user:", err)
	}
	log.Println("Vendor created: ops@apexconstruction.in / vendor123")

	// ================== VENDORS ==================
	log.Println("Creating vendor cards...")

	cards := []domain.Vendor{
		{
			Name:         "Apex Construction Ltd.",
			Specialty:    "Residential construction and renovation",
			Rating:       4.5,
			QuoteAmount:  427498,
			QuoteDetails: "Full renovation including structural work, finishes and handover.",
		},
		{
			Name:         "BuildRight Solutions",
			Specialty:    "Turnkey interiors and civil work",
			Rating:       4.8,
			QuoteAmount:  465000,
			QuoteDetails: "Premium materials with a 5-year workmanship warranty.",
		},
		{
			Name:         "Urban Infra Group",
			Specialty:    "Commercial and residential projects",
			Rating:       4.5,
			QuoteAmount:  410250,
			QuoteDetails: "Value engineering focused quote with phased billing.",
		},
	}
	for i := range cards {
		if err := vendors.Create(ctx, &cards[i]); err != nil {
			log.Fatal("seed vendor card:", err)
		}
	}

	// ================== PROJECT ==================
	log.Println("Creating demo project...")

	project := &domain.Project{
		CustomerID: customer.ID,
		Title:      "3BHK Villa Renovation, Whitefield",
		Notes:      "Two bathrooms to be redone, modular kitchen, full repaint.",
		Status:     domain.ProjectPending,
	}
	if err := projects.Create(ctx, project); err != nil {
		log.Fatal("seed project:", err)
	}

	log.Println("Seed complete.")
}
