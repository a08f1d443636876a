package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Tests are skipped when it
// is not reachable. Override the DSN with TEST_DATABASE_DSN.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/bambite_test?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "CartItems", "Carts", "StoreConfig", "Product", "Users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema the repositories expect.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS Users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		firstName VARCHAR(100) NOT NULL,
		lastName VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		phone VARCHAR(30),
		address VARCHAR(255),
		passwordHash VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'CUSTOMER',
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_role (role)
	)`

	createProductTable := `
	CREATE TABLE IF NOT EXISTS Product (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		stock INT,
		category VARCHAR(100),
		imageUrl VARCHAR(500),
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		isDeleted TINYINT(1) NOT NULL DEFAULT 0,
		stockeable TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_category (category),
		INDEX idx_deleted (isDeleted)
	)`

	createStoreConfigTable := `
	CREATE TABLE IF NOT EXISTS StoreConfig (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderingEnabled TINYINT(1) NOT NULL DEFAULT 1,
		hasStockControl TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createCartsTable := `
	CREATE TABLE IF NOT EXISTS Carts (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		userId INT UNSIGNED NOT NULL UNIQUE,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createCartItemsTable := `
	CREATE TABLE IF NOT EXISTS CartItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		cartId INT UNSIGNED NOT NULL,
		productId INT UNSIGNED NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		UNIQUE KEY uq_cart_product (cartId, productId),
		FOREIGN KEY (cartId) REFERENCES Carts(id) ON DELETE CASCADE,
		INDEX idx_product (productId)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		userId INT UNSIGNED NOT NULL,
		firstName VARCHAR(100) NOT NULL,
		lastName VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		phone VARCHAR(30),
		address VARCHAR(255),
		status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
		totalPrice DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_user (userId),
		INDEX idx_status (status)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		productId INT UNSIGNED NOT NULL,
		productName VARCHAR(255) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		priceAtTime DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId),
		INDEX idx_product (productId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Users", createUsersTable},
		{"Product", createProductTable},
		{"StoreConfig", createStoreConfigTable},
		{"Carts", createCartsTable},
		{"CartItems", createCartItemsTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
