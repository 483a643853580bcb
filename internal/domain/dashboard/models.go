package dashboard

type Stats struct {
	TotalEmployees int            `json:"totalEmployees"`
	PresentToday   int            `json:"presentToday"`
	AbsentToday    int            `json:"absentToday"`
	HalfDayToday   int            `json:"halfDayToday"`
	OnLeaveToday   int            `json:"onLeaveToday"`
	AttendanceRate float64        `json:"attendanceRate"`
	PendingLeaves  int            `json:"pendingLeaves"`
	ByDepartment   map[string]int `json:"byDepartment"`
	ByGender       map[string]int `json:"byGender"`
	ByLeaveType    map[string]int `json:"byLeaveType"`
}

type TrendPoint struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DailyStatus struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
