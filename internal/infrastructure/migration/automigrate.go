package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema directly from the model
// structs. Development only; production uses versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	s.logger.Infow("auto migration completed", "models_count", len(migrateModels))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SubscribableModel{},
		&models.SubscriptionModel{},
		&models.SubscriptionLineItemModel{},
		&models.SubscriptionEventModel{},
		&models.OrderModel{},
		&models.OrderLineItemModel{},
	}
}
