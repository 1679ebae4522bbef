package entity

import (
	"strings"

	"campus/internal/errors"
)

// Codelist domains used by the enrichment flows. The codes are the
// registry's historical identifiers and are part of the wire contract.
const (
	DomainGender        = "POHLAVI"
	DomainMaritalStatus = "STAV"
	DomainTitlePrefix   = "TITUL_PRED"
	DomainTitleSuffix   = "TITUL_ZA"
	DomainCitizenship   = "KVANT_OBCAN"
	DomainBank          = "CIS_BANK"
	DomainEuroBank      = "CIS_BANK_EURO"
)

// LanguageCzech is the fallback language for localized texts.
const LanguageCzech = "cs"

// CodelistKey identifies a single codelist entry.
type CodelistKey struct {
	Domain string `json:"domain" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

// MarshalText encodes the key as "DOMAIN:CODE" so it can serve as a JSON
// map key.
func (k CodelistKey) MarshalText() ([]byte, error) {
	return []byte(k.Domain + ":" + k.Code), nil
}

// UnmarshalText decodes a "DOMAIN:CODE" map key.
func (k *CodelistKey) UnmarshalText(text []byte) error {
	domain, code, ok := strings.Cut(string(text), ":")
	if !ok {
		return errors.Errorf("malformed codelist key: %q", text)
	}
	k.Domain = domain
	k.Code = code

	return nil
}

// CodelistMeaning carries the localized texts of a codelist entry.
type CodelistMeaning struct {
	Czech     string `json:"czech"`
	English   string `json:"english"`
	Localized string `json:"localized,omitempty"`
}

// Text resolves the display text, preferring the localized variant and
// falling back to Czech when the localized field is empty.
func (m CodelistMeaning) Text() string {
	if m.Localized != "" {
		return m.Localized
	}
	return m.Czech
}

// PlaceName is the municipality-part resolution triple.
type PlaceName struct {
	Municipality     string `json:"municipality"`
	MunicipalityPart string `json:"municipalityPart"`
	District         string `json:"district"`
}

// HighSchool is the resolved institution record including its address
// place names and the optional field-of-study name.
type HighSchool struct {
	Name             string  `json:"name"`
	Street           string  `json:"street"`
	Zip              string  `json:"zip"`
	Municipality     string  `json:"municipality"`
	District         string  `json:"district"`
	FieldOfStudyName *string `json:"fieldOfStudyName,omitempty"`
}

// LookupRequest batches every reference-data need of one enrichment pass
// into a single call. Optional scalars use pointers so absence is explicit.
type LookupRequest struct {
	Keys                []CodelistKey `json:"keys,omitempty" validate:"dive"`
	CountryIDs          []int64       `json:"countryIds,omitempty" validate:"dive,gt=0"`
	MunicipalityPartIDs []int64       `json:"municipalityPartIds,omitempty" validate:"dive,gt=0"`
	HighSchoolID        *int64        `json:"highSchoolId,omitempty" validate:"omitempty,gt=0"`
	FieldOfStudyNumber  *string       `json:"fieldOfStudyNumber,omitempty"`
	Language            string        `json:"language" validate:"required,len=2"`
}

// IsEmpty reports whether the request carries nothing to resolve; such a
// request must never leave the process.
func (r LookupRequest) IsEmpty() bool {
	return len(r.Keys) == 0 &&
		len(r.CountryIDs) == 0 &&
		len(r.MunicipalityPartIDs) == 0 &&
		r.HighSchoolID == nil &&
		r.FieldOfStudyNumber == nil
}

// LookupResult is the joined outcome of one batched lookup. Keys that did
// not resolve are absent from the maps.
type LookupResult struct {
	Meanings     map[CodelistKey]CodelistMeaning `json:"meanings,omitempty"`
	CountryNames map[int64]string                `json:"countryNames,omitempty"`
	PlaceNames   map[int64]PlaceName             `json:"placeNames,omitempty"`
	HighSchool   *HighSchool                     `json:"highSchool,omitempty"`
}

// Meaning resolves the display text for a codelist entry, or nil when the
// entry was not requested or does not exist.
func (r *LookupResult) Meaning(domain, code string) *string {
	if r == nil || code == "" {
		return nil
	}
	m, ok := r.Meanings[CodelistKey{Domain: domain, Code: code}]
	if !ok {
		return nil
	}
	text := m.Text()
	return &text
}

// CountryName resolves a country display name by id, or nil.
func (r *LookupResult) CountryName(id *int64) *string {
	if r == nil || id == nil {
		return nil
	}
	name, ok := r.CountryNames[*id]
	if !ok {
		return nil
	}
	return &name
}

// PlaceName resolves the municipality-part triple by id, or nil.
func (r *LookupResult) PlaceName(id *int64) *PlaceName {
	if r == nil || id == nil {
		return nil
	}
	p, ok := r.PlaceNames[*id]
	if !ok {
		return nil
	}
	return &p
}
