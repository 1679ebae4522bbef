package model

// CodelistEntryModel is the GORM-specific struct for the 'codelist_entries' table.
type CodelistEntryModel struct {
	Domain string `gorm:"type:varchar(50);primaryKey"`
	Code   string `gorm:"type:varchar(50);primaryKey"`
	TextCs string `gorm:"type:varchar(255);not null"`
	TextEn string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CodelistEntryModel) TableName() string {
	return "codelist_entries"
}

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID     int64  `gorm:"primaryKey"`
	NameCs string `gorm:"type:varchar(255);not null"`
	NameEn string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// MunicipalityPartModel is the GORM-specific struct for the
// 'municipality_parts' table.
type MunicipalityPartModel struct {
	ID             int64  `gorm:"primaryKey"`
	Name           string `gorm:"type:varchar(255);not null"`
	MunicipalityID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MunicipalityPartModel) TableName() string {
	return "municipality_parts"
}

// MunicipalityModel is the GORM-specific struct for the 'municipalities' table.
type MunicipalityModel struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(255);not null"`
	DistrictID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MunicipalityModel) TableName() string {
	return "municipalities"
}

// DistrictModel is the GORM-specific struct for the 'districts' table.
type DistrictModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}

// HighSchoolModel is the GORM-specific struct for the 'high_schools' table.
type HighSchoolModel struct {
	ID             int64  `gorm:"primaryKey"`
	Name           string `gorm:"type:varchar(255);not null"`
	Street         string `gorm:"type:varchar(255)"`
	Zip            string `gorm:"type:varchar(10)"`
	MunicipalityID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (HighSchoolModel) TableName() string {
	return "high_schools"
}

// FieldOfStudyModel is the GORM-specific struct for the 'fields_of_study' table.
type FieldOfStudyModel struct {
	Number string `gorm:"type:varchar(20);primaryKey"`
	Name   string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (FieldOfStudyModel) TableName() string {
	return "fields_of_study"
}
