package postgres

import (
	"purchasing/internal/adapters/out/postgres/orderrepo"
	"purchasing/internal/adapters/out/postgres/outboxrepo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileDTO is the profiles row maintained by the identity provider. The
// service reads it to resolve roles and owner display names.
type ProfileDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"type:varchar(255);not null;default:''"`
	Role     string    `gorm:"type:varchar(20);not null;default:'employee'"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ProfileDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&outboxrepo.MessageDTO{},
	)
}
