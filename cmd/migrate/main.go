// Comando de migraciones de esquema con goose.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate status
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avasquez/biblioteca-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("abrir conexión: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping a PostgreSQL: %v", err)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	migrationsDir := "./db/migrations"

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}

	log.Printf("ejecutando migraciones: %s", command)
	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			log.Fatalf("aplicar migraciones: %v", err)
		}
		log.Println("migraciones aplicadas")
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			log.Fatalf("revertir migración: %v", err)
		}
		log.Println("migración revertida")
	case "status":
		if err := goose.Status(db, migrationsDir); err != nil {
			log.Fatalf("estado de migraciones: %v", err)
		}
	case "version":
		version, err := goose.GetDBVersion(db)
		if err != nil {
			log.Fatalf("versión de migraciones: %v", err)
		}
		log.Printf("versión actual: %d", version)
	case "create":
		if len(os.Args) < 3 {
			log.Fatal("uso: migrate create <nombre>")
		}
		if err := goose.Create(db, migrationsDir, os.Args[2], "sql"); err != nil {
			log.Fatalf("crear migración: %v", err)
		}
		log.Printf("migración creada: %s", os.Args[2])
	default:
		log.Fatalf("comando desconocido: %s (disponibles: up, down, status, version, create)", command)
	}
}
