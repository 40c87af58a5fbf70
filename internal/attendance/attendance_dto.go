package attendance

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Present    *bool  `json:"present" binding:"required"`
}

type AttendanceResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"`
	Present      bool   `json:"present"`
}

type BoardEntry struct {
	EmployeeID int64  `json:"employeeId"`
	Name       string `json:"name"`
	Status     string `json:"status"` // present | absent | unset
}

type BoardResponse struct {
	Date    string       `json:"date"`
	Entries []BoardEntry `json:"entries"`
	Summary SummaryDTO   `json:"summary"`
}

type SummaryDTO struct {
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Unmarked int `json:"unmarked"`
}

type SaveBoardEntry struct {
	EmployeeID int64  `json:"employeeId" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=present absent unset"`
}

type SaveBoardRequest struct {
	Date    string           `json:"date" binding:"required"`
	Entries []SaveBoardEntry `json:"entries" binding:"required,dive"`
}

type FailedSave struct {
	EmployeeID int64  `json:"employeeId"`
	Reason     string `json:"reason"`
}

type SaveBoardResponse struct {
	Date   string       `json:"date"`
	Saved  int          `json:"saved"`
	Failed []FailedSave `json:"failed,omitempty"`
}

type CalendarResponse struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

type CalendarDay struct {
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	IsSelected     bool   `json:"isSelected"`
	HasAttendance  bool   `json:"hasAttendance"`
}
