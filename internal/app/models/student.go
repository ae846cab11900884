package models

// Student defines the student model based on the 'students' table.
// USN is the natural key; DatasetFolder references enrollment data managed by
// an external face-recognition pipeline and is opaque to this system.
type Student struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	USN           string `json:"usn" db:"usn"`
	ParentNumber  string `json:"parentNumber" db:"parent_number"`
	Section       string `json:"section" db:"section"`
	Department    string `json:"department" db:"department"`
	Sem           string `json:"sem" db:"sem"`
	DatasetFolder string `json:"datasetFolder,omitempty" db:"dataset_folder"`
}
