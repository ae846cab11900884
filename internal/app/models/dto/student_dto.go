package dto

// StudentRequest carries student fields for create and update. DatasetFolder
// points at externally-managed biometric enrollment data; only create accepts
// it, the face pipeline owns it afterwards.
type StudentRequest struct {
	Name          string `json:"name" binding:"required"`
	USN           string `json:"usn" binding:"required"`
	ParentNumber  string `json:"parentNumber"`
	Section       string `json:"section"`
	Department    string `json:"department"`
	Sem           string `json:"sem"`
	DatasetFolder string `json:"datasetFolder"`
}

// StudentResponse represents one student in list payloads. The dataset folder
// is internal plumbing and stays out of the listing.
type StudentResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	USN          string `json:"usn"`
	ParentNumber string `json:"parentNumber"`
	Section      string `json:"section"`
	Department   string `json:"department"`
	Sem          string `json:"sem"`
}
