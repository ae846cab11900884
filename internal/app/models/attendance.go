package models

// AttendanceStatus is the recorded state for one student on one day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

// IsValid reports whether the status is one of the recognized values.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// AttendanceRecord defines one row of the 'attendance' table. At most one
// record exists per (StudentID, Date) pair, enforced by a unique constraint.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Date      string           `json:"date" db:"date"`
	Time      string           `json:"time" db:"time"`
	Status    AttendanceStatus `json:"status" db:"status"`

	// Joined student identity for display
	StudentName string `json:"studentName,omitempty"`
	USN         string `json:"rollNumber,omitempty"`
}
