package model

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	RoleClient    = "Client"
	RoleTherapist = "Therapist"
)

type Role struct {
	gorm.Model
	ID   uint32 `gorm:"primary_key;auto_increment" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// SeedRoles inserts the built-in roles if they are not present yet.
func SeedRoles(db *gorm.DB) error {
	roles := []Role{
		{Name: RoleClient},
		{Name: RoleTherapist},
	}

	for _, role := range roles {
		var existingRole Role
		err := db.Where("name = ?", role.Name).First(&existingRole).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
