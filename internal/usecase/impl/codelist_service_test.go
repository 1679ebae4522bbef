package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/entity"
	"campus/internal/errors"
)

func TestCodelistService_Lookup_RunsOnlyRequestedBranches(t *testing.T) {
	repo := &fakeCodelistRepo{}
	svc := NewCodelistService(repo, testLogger())

	result, err := svc.Lookup(context.Background(), entity.LookupRequest{
		Keys:     []entity.CodelistKey{{Domain: entity.DomainGender, Code: "M"}},
		Language: "en",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, repo.meaningsCalls)
	assert.Equal(t, 0, repo.countriesCalls)
	assert.Equal(t, 0, repo.placesCalls)
	assert.Equal(t, 0, repo.highSchoolCalls)
}

func TestCodelistService_Lookup_JoinsAllBranches(t *testing.T) {
	repo := &fakeCodelistRepo{
		meaningsFn: func(keys []entity.CodelistKey, _ string) (map[entity.CodelistKey]entity.CodelistMeaning, error) {
			return map[entity.CodelistKey]entity.CodelistMeaning{
				keys[0]: {Czech: "muž", Localized: "male"},
			}, nil
		},
		countriesFn: func(ids []int64, _ string) (map[int64]string, error) {
			return map[int64]string{ids[0]: "Czechia"}, nil
		},
		placesFn: func(ids []int64) (map[int64]entity.PlaceName, error) {
			return map[int64]entity.PlaceName{
				ids[0]: {Municipality: "Brno", MunicipalityPart: "Žabovřesky", District: "Brno-město"},
			}, nil
		},
		highSchoolFn: func(int64) (*entity.HighSchool, error) {
			return &entity.HighSchool{Name: "Gymnázium Brno", Municipality: "Brno"}, nil
		},
		fieldFn: func(string) (*string, error) {
			return ptr("Informatics"), nil
		},
	}
	svc := NewCodelistService(repo, testLogger())

	key := entity.CodelistKey{Domain: entity.DomainGender, Code: "M"}
	result, err := svc.Lookup(context.Background(), entity.LookupRequest{
		Keys:                []entity.CodelistKey{key},
		CountryIDs:          []int64{203},
		MunicipalityPartIDs: []int64{411},
		HighSchoolID:        ptr(int64(77)),
		FieldOfStudyNumber:  ptr("1801T"),
		Language:            "en",
	})

	require.NoError(t, err)
	assert.Equal(t, "male", result.Meanings[key].Text())
	assert.Equal(t, "Czechia", result.CountryNames[203])
	assert.Equal(t, "Žabovřesky", result.PlaceNames[411].MunicipalityPart)
	require.NotNil(t, result.HighSchool)
	assert.Equal(t, "Gymnázium Brno", result.HighSchool.Name)
	require.NotNil(t, result.HighSchool.FieldOfStudyName)
	assert.Equal(t, "Informatics", *result.HighSchool.FieldOfStudyName)
}

func TestCodelistService_Lookup_FailsOnFirstBranchError(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &fakeCodelistRepo{
		countriesFn: func([]int64, string) (map[int64]string, error) {
			return nil, dbErr
		},
	}
	svc := NewCodelistService(repo, testLogger())

	result, err := svc.Lookup(context.Background(), entity.LookupRequest{
		Keys:       []entity.CodelistKey{{Domain: entity.DomainGender, Code: "M"}},
		CountryIDs: []int64{203},
		Language:   "cs",
	})

	require.ErrorIs(t, err, dbErr)
	assert.Nil(t, result)
}

func TestCodelistService_Lookup_UnknownKeysAreAbsentNotErrors(t *testing.T) {
	repo := &fakeCodelistRepo{
		meaningsFn: func([]entity.CodelistKey, string) (map[entity.CodelistKey]entity.CodelistMeaning, error) {
			return map[entity.CodelistKey]entity.CodelistMeaning{}, nil
		},
	}
	svc := NewCodelistService(repo, testLogger())

	result, err := svc.Lookup(context.Background(), entity.LookupRequest{
		Keys:     []entity.CodelistKey{{Domain: entity.DomainGender, Code: "ZZ"}},
		Language: "cs",
	})

	require.NoError(t, err)
	assert.Nil(t, result.Meaning(entity.DomainGender, "ZZ"))
}

func TestCodelistMeaning_FallsBackToCzech(t *testing.T) {
	m := entity.CodelistMeaning{Czech: "ženatý", Localized: ""}
	assert.Equal(t, "ženatý", m.Text())

	m.Localized = "married"
	assert.Equal(t, "married", m.Text())
}
