package model

import "time"

// StudentModel is the GORM-specific struct for the 'students' table.
type StudentModel struct {
	ID             int64   `gorm:"primaryKey"`
	PersonID       int64   `gorm:"not null;index"`
	StudyProgramID int64   `gorm:"not null"`
	StudyPlanID    int64   `gorm:"not null"`
	StudyYear      int     `gorm:"not null"`
	StudyFormCode  *string `gorm:"type:varchar(10)"`
	StudyStateCode *string `gorm:"type:varchar(10)"`
	EnrollmentYear *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
