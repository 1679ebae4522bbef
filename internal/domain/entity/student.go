package entity

// StudentProfileView is the raw student row before enrichment.
type StudentProfileView struct {
	StudentID       int64
	PersonID        int64
	StudyProgramID  int64
	StudyPlanID     int64
	StudyYear       int
	StudyFormCode   *string
	StudyStateCode  *string
	EnrollmentYear  *int
}

// ProgramAndField is the study-plan projection joined into student profiles.
type ProgramAndField struct {
	ProgramID   int64   `json:"programId"`
	ProgramName string  `json:"programName"`
	FieldName   *string `json:"fieldName,omitempty"`
}

// StudentProfile is the aggregated student payload: the student row joined
// with the person simple profile and the study-program projection.
type StudentProfile struct {
	StudentID      int64            `json:"studentId"`
	Person         *SimpleProfile   `json:"person,omitempty"`
	Program        *ProgramAndField `json:"program,omitempty"`
	StudyYear      int              `json:"studyYear"`
	StudyForm      *string          `json:"studyForm,omitempty"`
	StudyState     *string          `json:"studyState,omitempty"`
	EnrollmentYear *int             `json:"enrollmentYear,omitempty"`
}
