package main

import (
	"log"

	"github.com/dayflow-dev/dayflow/db"
	"github.com/dayflow-dev/dayflow/internal/auth"
	"github.com/dayflow-dev/dayflow/internal/config"
	"github.com/dayflow-dev/dayflow/internal/handlers"
	"github.com/dayflow-dev/dayflow/internal/router"
	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	database, err := db.ConnectDatabase(cfg.Database)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.MigrateDatabase(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	sqlDB, err := database.DB()

	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}

	defer sqlDB.Close()

	issuer, err := auth.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	if err != nil {
		log.Fatalf("Failed to configure token issuer: %v", err)
	}

	users := &stores.GormUserStore{DB: database}
	employees := &stores.GormEmployeeStore{DB: database}
	attendance := &stores.GormAttendanceStore{DB: database}
	leaves := &stores.GormLeaveStore{DB: database}
	payrolls := &stores.GormPayrollStore{DB: database}

	authService := services.NewAuthService(users, auth.BcryptHasher{}, issuer)

	h := handlers.New(
		authService,
		services.NewEmployeeService(employees, users),
		services.NewAttendanceService(attendance, cfg.Location),
		services.NewLeaveService(leaves, cfg.Location),
		services.NewPayrollService(payrolls, attendance, employees),
		sqlDB,
	)

	r := router.NewRouter(h, authService)

	log.Printf("Dayflow listening on :%s", cfg.Server.Port)

	if err = r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
