package model

import "time"

// PersonModel is the GORM-specific struct for the 'persons' table.
type PersonModel struct {
	ID                int64   `gorm:"primaryKey"`
	FirstName         string  `gorm:"type:varchar(100);not null"`
	LastName          string  `gorm:"type:varchar(100);not null"`
	BirthSurname      *string `gorm:"type:varchar(100)"`
	TitlePrefixCode   *string `gorm:"type:varchar(20)"`
	TitleSuffixCode   *string `gorm:"type:varchar(20)"`
	GenderCode        *string `gorm:"type:varchar(10)"`
	MaritalStatusCode *string `gorm:"type:varchar(10)"`
	CitizenshipCode   *string `gorm:"type:varchar(10)"`
	BirthCountryID    *int64
	BirthPlace        *string `gorm:"type:varchar(255)"`
	BirthDate         *time.Time
	PersonalNumber    *string `gorm:"type:varchar(20)"`
	Email             *string `gorm:"type:varchar(255)"`
	Phone             *string `gorm:"type:varchar(30)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}

// Address type discriminators for the 'person_addresses' table.
const (
	AddressTypePermanent = "PERMANENT"
	AddressTypeTemporary = "TEMPORARY"
)

// PersonAddressModel is the GORM-specific struct for the 'person_addresses' table.
type PersonAddressModel struct {
	ID                 int64   `gorm:"primaryKey"`
	PersonID           int64   `gorm:"not null;index"`
	AddressType        string  `gorm:"type:varchar(20);not null"`
	Street             *string `gorm:"type:varchar(255)"`
	HouseNumber        *string `gorm:"type:varchar(20)"`
	Zip                *string `gorm:"type:varchar(10)"`
	CountryID          *int64
	MunicipalityPartID *int64
}

// TableName explicitly sets the table name for GORM.
func (PersonAddressModel) TableName() string {
	return "person_addresses"
}

// PersonBankingModel is the GORM-specific struct for the 'person_banking' table.
type PersonBankingModel struct {
	PersonID          int64   `gorm:"primaryKey"`
	AccountNumber     *string `gorm:"type:varchar(30)"`
	AccountPrefix     *string `gorm:"type:varchar(10)"`
	BankCode          *string `gorm:"type:varchar(10)"`
	EuroAccountNumber *string `gorm:"type:varchar(40)"`
	EuroBankCode      *string `gorm:"type:varchar(15)"`
	EuroIBAN          *string `gorm:"type:varchar(40)"`
	EuroCountryID     *int64
}

// TableName explicitly sets the table name for GORM.
func (PersonBankingModel) TableName() string {
	return "person_banking"
}

// PersonEducationModel is the GORM-specific struct for the 'person_education' table.
type PersonEducationModel struct {
	PersonID           int64 `gorm:"primaryKey"`
	HighSchoolID       *int64
	FieldOfStudyNumber *string `gorm:"type:varchar(20)"`
	GraduationYear     *int
	ForeignSchoolName  *string `gorm:"type:varchar(255)"`
	CountryID          *int64
}

// TableName explicitly sets the table name for GORM.
func (PersonEducationModel) TableName() string {
	return "person_education"
}
