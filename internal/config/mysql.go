package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared database handle
var DB *gorm.DB
var err error

// InitDB opens the MySQL connection
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	// TranslateError maps duplicate-key violations to gorm.ErrDuplicatedKey,
	// which the services fold into their idempotent outcomes
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
