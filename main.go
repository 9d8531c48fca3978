// @title           HRMS HTTP Service API
// @version         1.0
// @description     Human resource record-keeping service: departments, positions, employees, attendance and leave requests

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"
	"hrms-http-service/routes"
	"hrms-http-service/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Initialize logging
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; environment variables may also come from elsewhere
	if err := godotenv.Load(); err != nil {
		config.Warning("Could not load .env file: %v", err)
	} else {
		config.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.DBMigrationMode == "drop" {
		log.Println("Warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Failed to drop and recreate tables: %v", err)
		}
	} else {
		// AutoMigrate only adds new columns and tables
		log.Println("Running in standard mode, only new columns and tables will be added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Auto migration failed: %v", err)
		}
	}

	// Make sure at least one admin account exists
	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	config.Info("Server listening on: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB initializes the database connection and tunes the pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate migrates all models (adds new columns and tables only)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Department{},
		&models.Position{},
		&models.Employee{},
		&models.Attendance{},
		&models.LeaveRequest{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and rebuilds the schema
func dropAndRecreateTables(db *gorm.DB) error {
	// Warning: this destroys all data
	log.Println("Warning: dropping and recreating all tables, all data will be lost")

	// Foreign key checks must be off to drop tables in any order
	db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	var tables []string
	err := db.Raw("SHOW TABLES").Scan(&tables).Error
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}

	for _, table := range tables {
		log.Printf("Dropping table: %s", table)
		err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	log.Println("Recreating all tables")
	return autoMigrate(db)
}

// ensureAdminExists seeds a default admin account when none exists yet
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		hashedPassword, err := utils.HashPassword(cfg.DefaultAdminPassword)
		if err != nil {
			log.Printf("Failed to hash default admin password: %v", err)
			return
		}

		admin := models.Admin{
			Username: cfg.DefaultAdminUsername,
			Password: hashedPassword,
			Email:    "admin@example.com",
		}

		result := db.Create(&admin)
		if result.Error != nil {
			log.Printf("Failed to create default admin: %v", result.Error)
			return
		}

		log.Printf("Created default admin account (username: %s)", cfg.DefaultAdminUsername)
	}
}
