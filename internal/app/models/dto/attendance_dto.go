package dto

// MarkAttendanceRequest is the single normalized input shape for marking
// attendance. Clients must send studentId; no snake_case aliasing.
type MarkAttendanceRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=present absent late"`
}

// AttendanceRowResponse is one attendance row joined with student identity
type AttendanceRowResponse struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"studentName"`
	RollNumber  string `json:"rollNumber"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}
