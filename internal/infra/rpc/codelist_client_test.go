package rpc

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/config"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
)

func newTestCodelistClient(baseURL string) service.CodelistGateway {
	cfg := &config.Config{}
	cfg.Services.CodelistURL = baseURL
	cfg.Resilience.MaxAttempts = 1

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCodelistClient(testCaller(), cfg, logger)
}

func TestCodelistClient_SkipsCallWhenNothingToResolve(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestCodelistClient(server.URL)

	result, err := client.EnrichProfile(context.Background(), &entity.PersonProfileView{
		PersonID:  42,
		FirstName: "Jan",
		LastName:  "Novák",
	}, "en")

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, int32(0), calls.Load(), "empty lookup must not leave the process")
}

func TestCodelistClient_BatchesAllReferencesIntoOneCall(t *testing.T) {
	var calls atomic.Int32
	var captured entity.LookupRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(entity.LookupResult{})
	}))
	defer server.Close()

	client := newTestCodelistClient(server.URL)

	_, err := client.EnrichProfile(context.Background(), &entity.PersonProfileView{
		PersonID:        42,
		TitlePrefixCode: ptrStr("ING"),
		GenderCode:      ptrStr("M"),
		CitizenshipCode: ptrStr("CZE"),
		BirthCountryID:  ptrInt64(203),
	}, "en")

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "one view resolves in one batched call")
	assert.Len(t, captured.Keys, 3)
	assert.Equal(t, []int64{203}, captured.CountryIDs)
	assert.Equal(t, "en", captured.Language)
}

func TestCodelistClient_EnrichAddresses_CollectsBothAddresses(t *testing.T) {
	var captured entity.LookupRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(entity.LookupResult{})
	}))
	defer server.Close()

	client := newTestCodelistClient(server.URL)

	_, err := client.EnrichAddresses(context.Background(), &entity.PersonAddressView{
		PersonID: 42,
		Permanent: &entity.Address{
			CountryID:          ptrInt64(203),
			MunicipalityPartID: ptrInt64(411),
		},
		Temporary: &entity.Address{
			CountryID:          ptrInt64(703),
			MunicipalityPartID: ptrInt64(500),
		},
	}, "cs")

	require.NoError(t, err)
	assert.Equal(t, []int64{203, 703}, captured.CountryIDs)
	assert.Equal(t, []int64{411, 500}, captured.MunicipalityPartIDs)
}

func TestCodelistClient_EnrichEducation_OmitsFieldWithoutSchool(t *testing.T) {
	var captured entity.LookupRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(entity.LookupResult{})
	}))
	defer server.Close()

	client := newTestCodelistClient(server.URL)

	_, err := client.EnrichEducation(context.Background(), &entity.PersonEducationView{
		PersonID:           42,
		FieldOfStudyNumber: ptrStr("1801T"),
		CountryID:          ptrInt64(203),
	}, "cs")

	require.NoError(t, err)
	assert.Nil(t, captured.HighSchoolID)
	assert.Nil(t, captured.FieldOfStudyNumber)
	assert.Equal(t, []int64{203}, captured.CountryIDs)
}

func TestCodelistClient_LookupResultRoundTripsMapKeys(t *testing.T) {
	key := entity.CodelistKey{Domain: entity.DomainGender, Code: "M"}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(entity.LookupResult{
			Meanings: map[entity.CodelistKey]entity.CodelistMeaning{
				key: {Czech: "muž", Localized: "male"},
			},
		})
	}))
	defer server.Close()

	client := newTestCodelistClient(server.URL)

	result, err := client.EnrichProfile(context.Background(), &entity.PersonProfileView{
		PersonID:   42,
		GenderCode: ptrStr("M"),
	}, "en")

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Meaning(entity.DomainGender, "M"))
	assert.Equal(t, "male", *result.Meaning(entity.DomainGender, "M"))
}

func TestPersonClient_MapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Services.UserURL = server.URL
	client := NewPersonClient(testCaller(), cfg)

	_, err := client.SimpleProfile(context.Background(), 42, "en")

	require.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestStudentClient_StudentIDs_EmptyListIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"studentIds": null}`))
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Services.StudentURL = server.URL
	client := NewStudentClient(testCaller(), cfg)

	ids, err := client.StudentIDs(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []int64{}, ids)
}

func TestStudyPlanClient_MapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Services.StudyPlanURL = server.URL
	client := NewStudyPlanClient(testCaller(), cfg)

	_, err := client.ProgramAndField(context.Background(), 7, 70, "en")

	require.ErrorIs(t, err, domainerrors.ErrStudyProgramNotFound)
}

func ptrStr(s string) *string { return &s }

func ptrInt64(v int64) *int64 { return &v }
