package entity

// Study-program codelist domains.
const (
	DomainStudyForm     = "FORMA"
	DomainStudyType     = "TYP_STUDIA"
	DomainStudyLanguage = "JAZYK_VYUKY"
	DomainStudyState    = "STAV_STUDIA"
)

// StudyProgramView is the raw study-program row with coded fields.
type StudyProgramView struct {
	ProgramID    int64
	Code         string
	Name         string
	FormCode     *string
	TypeCode     *string
	LanguageCode *string
	Credits      *int
	Semesters    *int
}

// StudyProgram is the enriched study-program payload.
type StudyProgram struct {
	ProgramID int64   `json:"programId"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Form      *string `json:"form,omitempty"`
	Type      *string `json:"type,omitempty"`
	Language  *string `json:"language,omitempty"`
	Credits   *int    `json:"credits,omitempty"`
	Semesters *int    `json:"semesters,omitempty"`
}

// StudyPlanView links a plan to its program and field of study.
type StudyPlanView struct {
	PlanID       int64
	ProgramID    int64
	FieldOfStudy *string
}
