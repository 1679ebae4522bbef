package entity

import "time"

// PersonProfileView is the raw profile row of one person: coded fields kept
// as registry codes, names and scalars as stored.
type PersonProfileView struct {
	PersonID          int64
	FirstName         string
	LastName          string
	BirthSurname      *string
	TitlePrefixCode   *string
	TitleSuffixCode   *string
	GenderCode        *string
	MaritalStatusCode *string
	CitizenshipCode   *string
	BirthCountryID    *int64
	BirthPlace        *string
	BirthDate         *time.Time
	PersonalNumber    *string
	Email             *string
	Phone             *string
}

// Address is one stored address with coded place references.
type Address struct {
	Street             *string
	HouseNumber        *string
	Zip                *string
	CountryID          *int64
	MunicipalityPartID *int64
}

// PersonAddressView holds the permanent and optional temporary address rows.
type PersonAddressView struct {
	PersonID  int64
	Permanent *Address
	Temporary *Address
}

// PersonBankingView is the stored banking row with bank codelist codes.
type PersonBankingView struct {
	PersonID          int64
	AccountNumber     *string
	AccountPrefix     *string
	BankCode          *string
	EuroAccountNumber *string
	EuroBankCode      *string
	EuroIBAN          *string
	EuroCountryID     *int64
}

// PersonEducationView is the stored secondary-education row.
type PersonEducationView struct {
	PersonID           int64
	HighSchoolID       *int64
	FieldOfStudyNumber *string
	GraduationYear     *int
	ForeignSchoolName  *string
	CountryID          *int64
}

// Titles groups the resolved academic title texts.
type Titles struct {
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

// Profile is the enriched person profile returned to clients.
type Profile struct {
	PersonID         int64      `json:"personId"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	BirthSurname     *string    `json:"birthSurname,omitempty"`
	Titles           Titles     `json:"titles"`
	Gender           *string    `json:"gender,omitempty"`
	MaritalStatus    *string    `json:"maritalStatus,omitempty"`
	Citizenship      *string    `json:"citizenship,omitempty"`
	BirthCountryName *string    `json:"birthCountryName,omitempty"`
	BirthPlace       *string    `json:"birthPlace,omitempty"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	StudentIDs       []int64    `json:"studentIds"`
}

// ResolvedAddress is one address with place references resolved to names.
type ResolvedAddress struct {
	Street           *string `json:"street,omitempty"`
	HouseNumber      *string `json:"houseNumber,omitempty"`
	Zip              *string `json:"zip,omitempty"`
	CountryName      *string `json:"countryName,omitempty"`
	Municipality     *string `json:"municipality,omitempty"`
	MunicipalityPart *string `json:"municipalityPart,omitempty"`
	District         *string `json:"district,omitempty"`
}

// Addresses is the enriched address payload.
type Addresses struct {
	PersonID  int64            `json:"personId"`
	Permanent *ResolvedAddress `json:"permanent,omitempty"`
	Temporary *ResolvedAddress `json:"temporary,omitempty"`
}

// Banking is the enriched banking payload.
type Banking struct {
	PersonID        int64   `json:"personId"`
	AccountNumber   *string `json:"accountNumber,omitempty"`
	AccountPrefix   *string `json:"accountPrefix,omitempty"`
	BankName        *string `json:"bankName,omitempty"`
	EuroAccount     *string `json:"euroAccount,omitempty"`
	EuroBankName    *string `json:"euroBankName,omitempty"`
	EuroIBAN        *string `json:"euroIban,omitempty"`
	EuroCountryName *string `json:"euroCountryName,omitempty"`
}

// Education is the enriched education payload.
type Education struct {
	PersonID          int64       `json:"personId"`
	HighSchool        *HighSchool `json:"highSchool,omitempty"`
	GraduationYear    *int        `json:"graduationYear,omitempty"`
	ForeignSchoolName *string     `json:"foreignSchoolName,omitempty"`
	CountryName       *string     `json:"countryName,omitempty"`
}

// SimpleProfile is the trimmed person projection served to sibling services.
type SimpleProfile struct {
	PersonID  int64   `json:"personId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Titles    Titles  `json:"titles"`
	Email     *string `json:"email,omitempty"`
}
