package model

// StudyProgramModel is the GORM-specific struct for the 'study_programs' table.
type StudyProgramModel struct {
	ID           int64   `gorm:"primaryKey"`
	Code         string  `gorm:"type:varchar(20);not null"`
	Name         string  `gorm:"type:varchar(255);not null"`
	FormCode     *string `gorm:"type:varchar(10)"`
	TypeCode     *string `gorm:"type:varchar(10)"`
	LanguageCode *string `gorm:"type:varchar(10)"`
	Credits      *int
	Semesters    *int
}

// TableName explicitly sets the table name for GORM.
func (StudyProgramModel) TableName() string {
	return "study_programs"
}

// StudyPlanModel is the GORM-specific struct for the 'study_plans' table.
type StudyPlanModel struct {
	ID             int64   `gorm:"primaryKey"`
	StudyProgramID int64   `gorm:"not null;index"`
	FieldOfStudy   *string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (StudyPlanModel) TableName() string {
	return "study_plans"
}
