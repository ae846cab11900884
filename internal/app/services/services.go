package services

// Services defined in this package:
// - AuthService: registration, login and token issuance
// - StudentService: student registry CRUD
// - AttendanceService: per-day attendance marking and listing
// - AlertService: unauthorized-capture feed
// - DoorService: door actuation relay
