package postgres

import (
	"context"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// personRepository implements repository.PersonRepository on PostgreSQL.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// FindProfileView loads the raw profile row of one person.
func (r *personRepository) FindProfileView(ctx context.Context, personID int64) (*entity.PersonProfileView, error) {
	var row model.PersonModel
	err := r.db.WithContext(ctx).
		Where("id = ?", personID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to query person")
	}

	return &entity.PersonProfileView{
		PersonID:          row.ID,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		BirthSurname:      row.BirthSurname,
		TitlePrefixCode:   row.TitlePrefixCode,
		TitleSuffixCode:   row.TitleSuffixCode,
		GenderCode:        row.GenderCode,
		MaritalStatusCode: row.MaritalStatusCode,
		CitizenshipCode:   row.CitizenshipCode,
		BirthCountryID:    row.BirthCountryID,
		BirthPlace:        row.BirthPlace,
		BirthDate:         row.BirthDate,
		PersonalNumber:    row.PersonalNumber,
		Email:             row.Email,
		Phone:             row.Phone,
	}, nil
}

// FindAddressView loads the person's addresses. The person row is checked
// first so a missing person is reported as not found rather than as an
// empty address list.
func (r *personRepository) FindAddressView(ctx context.Context, personID int64) (*entity.PersonAddressView, error) {
	if err := r.checkPersonExists(ctx, personID); err != nil {
		return nil, err
	}

	var rows []model.PersonAddressModel
	if err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query person addresses")
	}

	view := &entity.PersonAddressView{PersonID: personID}
	for _, row := range rows {
		address := &entity.Address{
			Street:             row.Street,
			HouseNumber:        row.HouseNumber,
			Zip:                row.Zip,
			CountryID:          row.CountryID,
			MunicipalityPartID: row.MunicipalityPartID,
		}
		switch row.AddressType {
		case model.AddressTypePermanent:
			view.Permanent = address
		case model.AddressTypeTemporary:
			view.Temporary = address
		}
	}

	return view, nil
}

// FindBankingView loads the person's banking row.
func (r *personRepository) FindBankingView(ctx context.Context, personID int64) (*entity.PersonBankingView, error) {
	if err := r.checkPersonExists(ctx, personID); err != nil {
		return nil, err
	}

	var row model.PersonBankingModel
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Person exists but has no banking data.
			return &entity.PersonBankingView{PersonID: personID}, nil
		}

		return nil, errors.Wrap(err, "failed to query person banking")
	}

	return &entity.PersonBankingView{
		PersonID:          row.PersonID,
		AccountNumber:     row.AccountNumber,
		AccountPrefix:     row.AccountPrefix,
		BankCode:          row.BankCode,
		EuroAccountNumber: row.EuroAccountNumber,
		EuroBankCode:      row.EuroBankCode,
		EuroIBAN:          row.EuroIBAN,
		EuroCountryID:     row.EuroCountryID,
	}, nil
}

// FindEducationView loads the person's secondary-education row.
func (r *personRepository) FindEducationView(ctx context.Context, personID int64) (*entity.PersonEducationView, error) {
	if err := r.checkPersonExists(ctx, personID); err != nil {
		return nil, err
	}

	var row model.PersonEducationModel
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.PersonEducationView{PersonID: personID}, nil
		}

		return nil, errors.Wrap(err, "failed to query person education")
	}

	return &entity.PersonEducationView{
		PersonID:           row.PersonID,
		HighSchoolID:       row.HighSchoolID,
		FieldOfStudyNumber: row.FieldOfStudyNumber,
		GraduationYear:     row.GraduationYear,
		ForeignSchoolName:  row.ForeignSchoolName,
		CountryID:          row.CountryID,
	}, nil
}

func (r *personRepository) checkPersonExists(ctx context.Context, personID int64) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", personID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check person existence")
	}
	if count == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}
