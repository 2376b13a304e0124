package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Dhyey-19/VaaniBill/internal/auth"
	"github.com/Dhyey-19/VaaniBill/internal/billing"
	"github.com/Dhyey-19/VaaniBill/internal/catalog"
	"github.com/Dhyey-19/VaaniBill/internal/db"
	"github.com/Dhyey-19/VaaniBill/internal/logger"
	"github.com/Dhyey-19/VaaniBill/internal/reports"
	"github.com/Dhyey-19/VaaniBill/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logger.Init()
	defer logger.Close()

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			logger.Fatal("missing env var", logger.String("key", k))
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	billRepo := billing.NewPostgresRepository(pgDB)
	reportRepo := reports.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo)
	billingService := billing.NewService(billRepo, catalogService, billing.NewStore())
	reportService := reports.NewService(reportRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(catalogService),
		Billing: billing.NewHandler(billingService),
		Reports: reports.NewHandler(reportService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "5174"
	}

	logger.Info("API running", logger.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", logger.Err(err))
	}
}
