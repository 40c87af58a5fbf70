package attendance

import (
	"time"
)

// Attendance is one employee's presence answer for one calendar day. At most
// one row exists per (employee_id, date); marking the same slot again
// overwrites the present flag.
type Attendance struct {
	ID         int64        `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64        `gorm:"column:employee_id;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Present    bool         `gorm:"column:present;not null"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type EmployeeRef struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
