package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	upContent := g.generateUpMigrationTemplate(name)
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	downContent := g.generateDownMigrationTemplate(name)
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

// generateUpMigrationTemplate generates a template for up migration
func (g *Generator) generateUpMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
-- Description: Add description here

-- Add your SQL statements here

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// generateDownMigrationTemplate generates a template for down migration
func (g *Generator) generateDownMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s
-- Description: Add rollback description here

-- Add your rollback SQL statements here

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateLineItemTablesMigration creates the initial line item schema
// migration: subscription line items plus the subscription event trail.
func (g *Generator) CreateLineItemTablesMigration() error {
	g.logger.Infow("creating initial line item schema migration")

	timestamp := "000001"
	name := "create_line_item_tables"

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(upFilePath, lineItemTablesUpMigration); err != nil {
		return fmt.Errorf("failed to create line item up migration: %w", err)
	}

	if err := g.writeFile(downFilePath, lineItemTablesDownMigration); err != nil {
		return fmt.Errorf("failed to create line item down migration: %w", err)
	}

	g.logger.Infow("line item schema migration created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

const lineItemTablesUpMigration = `-- Migration: Create line item tables
-- Created: Initial migration
-- Description: Subscription line items and the subscription audit trail

CREATE TABLE IF NOT EXISTS subscription_line_items (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    sid VARCHAR(50) NOT NULL UNIQUE,
    subscribable_id BIGINT UNSIGNED NOT NULL,
    quantity INT NOT NULL,
    interval_length INT NOT NULL DEFAULT 0,
    interval_units VARCHAR(10) NOT NULL DEFAULT '',
    installments INT NOT NULL DEFAULT 0,
    end_date TIMESTAMP NULL,
    subscription_id BIGINT UNSIGNED NULL,
    source_line_item_id BIGINT UNSIGNED NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP NULL,
    INDEX idx_line_item_subscribable (subscribable_id),
    INDEX idx_line_item_subscription (subscription_id),
    INDEX idx_line_item_deleted_at (deleted_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS subscription_events (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    sid VARCHAR(50) NOT NULL UNIQUE,
    subscription_id BIGINT UNSIGNED NOT NULL,
    event_type VARCHAR(50) NOT NULL,
    details JSON NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_event_subscription (subscription_id),
    INDEX idx_event_type (event_type),
    INDEX idx_event_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

const lineItemTablesDownMigration = `-- Rollback Migration: Create line item tables
-- Created: Initial migration rollback
-- Description: Drop the line item tables

DROP TABLE IF EXISTS subscription_events;
DROP TABLE IF EXISTS subscription_line_items;
`
