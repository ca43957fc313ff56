package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var AdminUsername = "admin"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and populates the database with default values if needed
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    err = DB.AutoMigrate(
        &models.User{},
        &models.PasswordReset{},
        &models.Question{},
        &models.AIQuestion{},
        &models.QuickplayGame{},
        &models.QuickplayAnswer{},
        &models.LeaderboardEntry{},
        &models.UserPerformanceMetrics{},
        &models.GlobalGameMetrics{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    Populate()
}

// Populate populates the database with default values if needed
func Populate() {
    var countUser int64
    DB.Model(&models.User{}).Count(&countUser)
    if countUser == 0 {
        // Create the default admin user with a hashed password either from the .env file or the DefaultPassword constant
        password := DefaultPassword
        if config.DefaultPassword != "" {
            password = config.DefaultPassword
        }

        password, err := utils.HashPassword(password)
        if err != nil {
            panic(err)
        }

        user := models.User{
            Username: AdminUsername,
            Email:    "admin@admin.com",
            Password: password,
        }
        DB.Create(&user)
        log.Println("Default user admin created")
    }

    // Seed a starter question bank so a fresh install is playable
    var countQuestion int64
    DB.Model(&models.Question{}).Count(&countQuestion)
    if countQuestion == 0 {
        for _, q := range starterQuestions {
            question := q
            if err := DB.Create(&question).Error; err != nil {
                log.Println("Error while seeding question: ", err)
            }
        }
        log.Printf("Seeded %d starter questions", len(starterQuestions))
    }
}
