// internal/db/db.go
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/lib/pq"
)

var DB *sql.DB

const defaultPoolSize = 5

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init builds the connection pool and bootstraps the schema. Any failure
// here is fatal: the server must not reach a serving state without a
// working pool.
func Init() {
	user := getenv("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	name := getenv("DB_NAME", "ecommerce_db")

	poolSize := defaultPoolSize
	if v := os.Getenv("DB_POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatalf("invalid DB_POOL_SIZE %q", v)
		}
		poolSize = n
	}

	if err := ensureDatabase(user, pass, host, port, name); err != nil {
		log.Fatalf("failed to ensure database %s: %v", name, err)
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name,
	)

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	DB.SetMaxOpenConns(poolSize)
	DB.SetMaxIdleConns(poolSize)

	if err = DB.Ping(); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	if err = createTables(); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}

	log.Printf("✅ Connected to database (pool size %d)", poolSize)
}

// ensureDatabase creates the target database if absent, connecting through
// the maintenance database since Postgres cannot create the database it is
// connected to.
func ensureDatabase(user, pass, host, port, name string) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		user, pass, host, port,
	)
	admin, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer admin.Close()

	_, err = admin.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P04" { // duplicate_database
		return nil
	}
	return err
}

func createTables() error {
	_, err := DB.Exec(`
        CREATE TABLE IF NOT EXISTS customers (
            customer_id SERIAL PRIMARY KEY,
            first_name VARCHAR(255) NOT NULL,
            last_name VARCHAR(255) NOT NULL,
            email VARCHAR(255) NOT NULL UNIQUE,
            address TEXT,
            phone VARCHAR(20)
        )
    `)
	if err != nil {
		return err
	}

	_, err = DB.Exec(`
        CREATE TABLE IF NOT EXISTS products (
            product_id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL UNIQUE,
            price NUMERIC(10, 2) NOT NULL,
            description TEXT,
            stock_quantity INT NOT NULL DEFAULT 0
        )
    `)
	return err
}

// Close drains the pool at shutdown.
func Close() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Println("⚠️ failed to close DB pool:", err)
		}
	}
}
