package expense

type CreateExpenseRequest struct {
	EmployeeID  int64   `json:"employeeId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

type ExpenseResponse struct {
	ID           string  `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
}
