package expense

import (
	"time"

	"gorm.io/gorm"
)

// Canonical expense categories. The zero-th member doubles as the fallback
// shown for records whose category no longer matches the list.
const (
	CategoryMaterials      = "Materials"
	CategoryTransportation = "Transportation"
	CategoryTools          = "Tools"
	CategoryOfficeSupplies = "Office Supplies"
	CategoryMeals          = "Meals"
	CategoryOther          = "Other"
)

// Categories lists every valid category in display order.
var Categories = []string{
	CategoryMaterials,
	CategoryTransportation,
	CategoryTools,
	CategoryOfficeSupplies,
	CategoryMeals,
	CategoryOther,
}

func IsValidCategory(c string) bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	EmployeeID  int64          `gorm:"not null;index"`
	Date        time.Time      `gorm:"type:date;not null;index"`
	Amount      float64        `gorm:"type:numeric(12,2);not null"`
	Category    string         `gorm:"size:50;not null"`
	Description string         `gorm:"size:500;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID"`
}

func (Expense) TableName() string {
	return "expenses"
}

// EmployeeRef is a read-only projection for preloading the owner's name.
type EmployeeRef struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:255"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
