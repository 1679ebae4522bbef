package postgres

import (
	"context"
	"strings"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// codelistRepository implements repository.CodelistRepository on PostgreSQL.
type codelistRepository struct {
	db *gorm.DB
}

// NewCodelistRepository is the constructor for codelistRepository.
func NewCodelistRepository(db *gorm.DB) repository.CodelistRepository {
	return &codelistRepository{db: db}
}

// FindMeaningsByKeys loads codelist entries for the given keys in one query.
func (r *codelistRepository) FindMeaningsByKeys(ctx context.Context, keys []entity.CodelistKey, language string) (map[entity.CodelistKey]entity.CodelistMeaning, error) {
	if len(keys) == 0 {
		return map[entity.CodelistKey]entity.CodelistMeaning{}, nil
	}

	tuples := make([][]any, 0, len(keys))
	for _, key := range keys {
		tuples = append(tuples, []any{key.Domain, key.Code})
	}

	var rows []model.CodelistEntryModel
	if err := r.db.WithContext(ctx).
		Where("(domain, code) IN ?", tuples).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query codelist entries")
	}

	meanings := make(map[entity.CodelistKey]entity.CodelistMeaning, len(rows))
	for _, row := range rows {
		meanings[entity.CodelistKey{Domain: row.Domain, Code: row.Code}] = entity.CodelistMeaning{
			Czech:     row.TextCs,
			English:   row.TextEn,
			Localized: localizedText(row.TextCs, row.TextEn, language),
		}
	}

	return meanings, nil
}

// FindCountryNamesByIDs loads country names for the given ids in one query.
func (r *codelistRepository) FindCountryNamesByIDs(ctx context.Context, ids []int64, language string) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	var rows []model.CountryModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query countries")
	}

	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		name := localizedText(row.NameCs, row.NameEn, language)
		if name == "" {
			name = row.NameCs
		}
		names[row.ID] = name
	}

	return names, nil
}

// placeNameRow is the joined projection of one municipality part.
type placeNameRow struct {
	ID               int64
	MunicipalityPart string
	Municipality     string
	District         string
}

// FindPlaceNamesByPartIDs resolves the municipality/part/district triple for
// each id via a three-way join.
func (r *codelistRepository) FindPlaceNamesByPartIDs(ctx context.Context, ids []int64) (map[int64]entity.PlaceName, error) {
	if len(ids) == 0 {
		return map[int64]entity.PlaceName{}, nil
	}

	var rows []placeNameRow
	if err := r.db.WithContext(ctx).
		Model(&model.MunicipalityPartModel{}).
		Select("municipality_parts.id AS id",
			"municipality_parts.name AS municipality_part",
			"municipalities.name AS municipality",
			"districts.name AS district").
		Joins("JOIN municipalities ON municipalities.id = municipality_parts.municipality_id").
		Joins("JOIN districts ON districts.id = municipalities.district_id").
		Where("municipality_parts.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query place names")
	}

	places := make(map[int64]entity.PlaceName, len(rows))
	for _, row := range rows {
		places[row.ID] = entity.PlaceName{
			Municipality:     row.Municipality,
			MunicipalityPart: row.MunicipalityPart,
			District:         row.District,
		}
	}

	return places, nil
}

// highSchoolRow is the joined projection of one high school with its
// address place names.
type highSchoolRow struct {
	Name         string
	Street       string
	Zip          string
	Municipality string
	District     string
}

// FindHighSchool loads the institution record with its municipality and
// district names resolved.
func (r *codelistRepository) FindHighSchool(ctx context.Context, id int64) (*entity.HighSchool, error) {
	var row highSchoolRow
	err := r.db.WithContext(ctx).
		Model(&model.HighSchoolModel{}).
		Select("high_schools.name AS name",
			"high_schools.street AS street",
			"high_schools.zip AS zip",
			"municipalities.name AS municipality",
			"districts.name AS district").
		Joins("JOIN municipalities ON municipalities.id = high_schools.municipality_id").
		Joins("JOIN districts ON districts.id = municipalities.district_id").
		Where("high_schools.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to query high school")
	}

	return &entity.HighSchool{
		Name:         row.Name,
		Street:       row.Street,
		Zip:          row.Zip,
		Municipality: row.Municipality,
		District:     row.District,
	}, nil
}

// FindFieldOfStudyName resolves a field-of-study number to its name.
func (r *codelistRepository) FindFieldOfStudyName(ctx context.Context, number string) (*string, error) {
	var row model.FieldOfStudyModel
	err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to query field of study")
	}

	return &row.Name, nil
}

// localizedText picks the text for the requested language; anything other
// than English behaves as Czech.
func localizedText(cs, en, language string) string {
	if strings.EqualFold(language, "en") && en != "" {
		return en
	}

	return cs
}
