package employee

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string         `gorm:"column:name;type:varchar(100);not null"`
	Position  string         `gorm:"column:position;type:varchar(100);not null"`
	Email     string         `gorm:"column:email;type:varchar(100)"`
	Phone     string         `gorm:"column:phone;type:varchar(20)"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
