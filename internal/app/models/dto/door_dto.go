package dto

// DoorRequest carries the requested door action
type DoorRequest struct {
	Action string `json:"action" binding:"required,oneof=open close"`
}

// DoorResponse relays the actuator outcome. Status is the lexical mapping of
// the requested action; ExitCode carries the subprocess result and must be
// checked by the caller.
type DoorResponse struct {
	Status   string `json:"status"`
	ExitCode int    `json:"code"`
	Output   string `json:"output"`
}

// AlertResponse is one unauthorized-capture entry
type AlertResponse struct {
	File string `json:"file"`
	Time string `json:"time"`
	Path string `json:"path"`
}
