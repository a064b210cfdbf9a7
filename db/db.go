package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rehan-adi/Blog-Backend/models"
)

func InitDB(config models.Config) (*sql.DB, error) {
	DBpath := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	DB, err := sql.Open("postgres", DBpath)
	if err != nil {
		log.Println("Failed to Connect with Blog-Backend DB: ", err.Error())
		return nil, err
	}
	if err := DB.Ping(); err != nil {
		log.Println("Failed to Ping Blog-Backend DB: ", err.Error())
		return nil, err
	}
	if err := applyMigration(DB, config.DBName); err != nil {
		return nil, err
	}

	DB.SetMaxOpenConns(15)
	DB.SetMaxIdleConns(5)
	return DB, nil
}

func applyMigration(db *sql.DB, dbname string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Println("Using Same Connection for Migrations failed: ", err.Error())
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(
		"file://db/migrations",
		dbname,
		driver)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	// Migrations run in transactions in postgres, a failed one rolls back.
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Println("Migration of Database failed: ", err.Error())
		return err
	}

	log.Println("Migrations applied successfully!")
	return nil
}
