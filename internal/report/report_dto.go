package report

type AttendanceReportRow struct {
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Present      bool   `json:"present"`
}

type DateGroupDTO struct {
	Date string                `json:"date"`
	Rows []AttendanceReportRow `json:"rows"`
}

type AttendanceReportResponse struct {
	Stats  AttendanceStats `json:"stats"`
	Groups []DateGroupDTO  `json:"groups"`
}

type ExpenseReportRow struct {
	ID           string  `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
}

type ExpenseReportResponse struct {
	Stats ExpenseStats       `json:"stats"`
	Rows  []ExpenseReportRow `json:"rows"`
}
