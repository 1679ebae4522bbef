package impl

import (
	"context"
	"io"
	"log/slog"

	"campus/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCodelistRepo stubs the codelist persistence port with per-method
// functions and call counters.
type fakeCodelistRepo struct {
	meaningsFn   func(keys []entity.CodelistKey, language string) (map[entity.CodelistKey]entity.CodelistMeaning, error)
	countriesFn  func(ids []int64, language string) (map[int64]string, error)
	placesFn     func(ids []int64) (map[int64]entity.PlaceName, error)
	highSchoolFn func(id int64) (*entity.HighSchool, error)
	fieldFn      func(number string) (*string, error)

	meaningsCalls   int
	countriesCalls  int
	placesCalls     int
	highSchoolCalls int
	fieldCalls      int
}

func (f *fakeCodelistRepo) FindMeaningsByKeys(_ context.Context, keys []entity.CodelistKey, language string) (map[entity.CodelistKey]entity.CodelistMeaning, error) {
	f.meaningsCalls++
	if f.meaningsFn == nil {
		return map[entity.CodelistKey]entity.CodelistMeaning{}, nil
	}
	return f.meaningsFn(keys, language)
}

func (f *fakeCodelistRepo) FindCountryNamesByIDs(_ context.Context, ids []int64, language string) (map[int64]string, error) {
	f.countriesCalls++
	if f.countriesFn == nil {
		return map[int64]string{}, nil
	}
	return f.countriesFn(ids, language)
}

func (f *fakeCodelistRepo) FindPlaceNamesByPartIDs(_ context.Context, ids []int64) (map[int64]entity.PlaceName, error) {
	f.placesCalls++
	if f.placesFn == nil {
		return map[int64]entity.PlaceName{}, nil
	}
	return f.placesFn(ids)
}

func (f *fakeCodelistRepo) FindHighSchool(_ context.Context, id int64) (*entity.HighSchool, error) {
	f.highSchoolCalls++
	if f.highSchoolFn == nil {
		return nil, nil
	}
	return f.highSchoolFn(id)
}

func (f *fakeCodelistRepo) FindFieldOfStudyName(_ context.Context, number string) (*string, error) {
	f.fieldCalls++
	if f.fieldFn == nil {
		return nil, nil
	}
	return f.fieldFn(number)
}

// fakePersonRepo stubs the person persistence port.
type fakePersonRepo struct {
	profileFn   func(personID int64) (*entity.PersonProfileView, error)
	addressFn   func(personID int64) (*entity.PersonAddressView, error)
	bankingFn   func(personID int64) (*entity.PersonBankingView, error)
	educationFn func(personID int64) (*entity.PersonEducationView, error)
}

func (f *fakePersonRepo) FindProfileView(_ context.Context, personID int64) (*entity.PersonProfileView, error) {
	return f.profileFn(personID)
}

func (f *fakePersonRepo) FindAddressView(_ context.Context, personID int64) (*entity.PersonAddressView, error) {
	return f.addressFn(personID)
}

func (f *fakePersonRepo) FindBankingView(_ context.Context, personID int64) (*entity.PersonBankingView, error) {
	return f.bankingFn(personID)
}

func (f *fakePersonRepo) FindEducationView(_ context.Context, personID int64) (*entity.PersonEducationView, error) {
	return f.educationFn(personID)
}

// fakeStudentRepo stubs the student persistence port.
type fakeStudentRepo struct {
	profileFn  func(studentID int64) (*entity.StudentProfileView, error)
	idsFn      func(personID int64) ([]int64, error)
	personIDFn func(studentID int64) (int64, error)
}

func (f *fakeStudentRepo) FindProfileView(_ context.Context, studentID int64) (*entity.StudentProfileView, error) {
	return f.profileFn(studentID)
}

func (f *fakeStudentRepo) FindStudentIDsByPersonID(_ context.Context, personID int64) ([]int64, error) {
	return f.idsFn(personID)
}

func (f *fakeStudentRepo) FindPersonIDByStudentID(_ context.Context, studentID int64) (int64, error) {
	return f.personIDFn(studentID)
}

// fakeStudyPlanRepo stubs the study-plan persistence port.
type fakeStudyPlanRepo struct {
	programFn func(programID int64) (*entity.StudyProgramView, error)
	planFn    func(planID int64) (*entity.StudyPlanView, error)
}

func (f *fakeStudyPlanRepo) FindProgramView(_ context.Context, programID int64) (*entity.StudyProgramView, error) {
	return f.programFn(programID)
}

func (f *fakeStudyPlanRepo) FindPlanView(_ context.Context, planID int64) (*entity.StudyPlanView, error) {
	return f.planFn(planID)
}

// fakeCodelistGateway stubs the enrichment gateway; every Enrich method
// shares one function and one call counter.
type fakeCodelistGateway struct {
	lookupFn func(language string) (*entity.LookupResult, error)
	calls    int
}

func (f *fakeCodelistGateway) enrich(language string) (*entity.LookupResult, error) {
	f.calls++
	if f.lookupFn == nil {
		return &entity.LookupResult{}, nil
	}
	return f.lookupFn(language)
}

func (f *fakeCodelistGateway) EnrichProfile(_ context.Context, _ *entity.PersonProfileView, language string) (*entity.LookupResult, error) {
	return f.enrich(language)
}

func (f *fakeCodelistGateway) EnrichAddresses(_ context.Context, _ *entity.PersonAddressView, language string) (*entity.LookupResult, error) {
	return f.enrich(language)
}

func (f *fakeCodelistGateway) EnrichBanking(_ context.Context, _ *entity.PersonBankingView, language string) (*entity.LookupResult, error) {
	return f.enrich(language)
}

func (f *fakeCodelistGateway) EnrichEducation(_ context.Context, _ *entity.PersonEducationView, language string) (*entity.LookupResult, error) {
	return f.enrich(language)
}

func (f *fakeCodelistGateway) EnrichStudyProgram(_ context.Context, _ *entity.StudyProgramView, language string) (*entity.LookupResult, error) {
	return f.enrich(language)
}

func (f *fakeCodelistGateway) EnrichStudentProfile(_ context.Context, _ *entity.StudentProfileView, language string) (*entity.LookupResult, error) {
	return f.enrich(language)
}

// fakePersonGateway stubs the person facade.
type fakePersonGateway struct {
	profileFn func(personID int64, language string) (*entity.SimpleProfile, error)
	calls     int
}

func (f *fakePersonGateway) SimpleProfile(_ context.Context, personID int64, language string) (*entity.SimpleProfile, error) {
	f.calls++
	return f.profileFn(personID, language)
}

// fakeStudentGateway stubs the student facade.
type fakeStudentGateway struct {
	idsFn      func(personID int64) ([]int64, error)
	personIDFn func(studentID int64) (int64, error)
	calls      int
}

func (f *fakeStudentGateway) StudentIDs(_ context.Context, personID int64) ([]int64, error) {
	f.calls++
	return f.idsFn(personID)
}

func (f *fakeStudentGateway) PersonID(_ context.Context, studentID int64) (int64, error) {
	f.calls++
	return f.personIDFn(studentID)
}

// fakeStudyPlanGateway stubs the study-plan facade.
type fakeStudyPlanGateway struct {
	programFn func(programID, planID int64, language string) (*entity.ProgramAndField, error)
	calls     int
}

func (f *fakeStudyPlanGateway) ProgramAndField(_ context.Context, programID, planID int64, language string) (*entity.ProgramAndField, error) {
	f.calls++
	return f.programFn(programID, planID, language)
}

func ptr[T any](v T) *T {
	return &v
}
