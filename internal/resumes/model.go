package resumes

import (
	"time"

	"resume-portal/resume/model"
)

// Record is the stored resume content of one student.
type Record struct {
	StudentID int64
	Data      model.ResumeData
	UpdatedAt time.Time
}
