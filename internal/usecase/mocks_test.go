package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/application"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/category"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/jwt"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
	"github.com/Ankit73-bit/job-portal-backend/internal/search"
)

type mockJWT struct {
	accessErr error
	claims    jwt.Claims
	validErr  error
}

func (m mockJWT) GenerateAccessToken(_ uuid.UUID, _, role string) (string, error) {
	if m.accessErr != nil {
		return "", m.accessErr
	}
	return "access:" + role, nil
}

func (m mockJWT) GenerateRefreshToken(uuid.UUID) (string, error) { return "refresh", nil }

func (m mockJWT) ValidateToken(string) (jwt.Claims, error) {
	if m.validErr != nil {
		return jwt.Claims{}, m.validErr
	}
	return m.claims, nil
}

func (m mockJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

type mockUserRepo struct {
	byID     map[uuid.UUID]user.User
	byEmail  map[string]user.User
	profiles map[uuid.UUID]user.Profile

	createErr error
	created   []user.User

	updateErr error
	updated   *user.User

	updatedProfile *user.Profile

	deactivateErr  error
	deactivatedID  uuid.UUID
	tombstoneEmail string
}

func (m *mockUserRepo) Create(_ context.Context, u user.User, _ user.Profile) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = &u
	return nil
}

func (m *mockUserRepo) GetProfile(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, p user.Profile) error {
	m.updatedProfile = &p
	return nil
}

func (m *mockUserRepo) Deactivate(_ context.Context, id uuid.UUID, tombstoneEmail string, _ time.Time) error {
	if m.deactivateErr != nil {
		return m.deactivateErr
	}
	m.deactivatedID = id
	m.tombstoneEmail = tombstoneEmail
	return nil
}

type mockCompanyRepo struct {
	byID    map[uuid.UUID]company.Company
	byOwner map[uuid.UUID]company.Company

	createErr error
	created   *company.Company

	listItems  []company.Company
	listTotal  int
	lastFilter repository.CompanyFilter
	lastParams pagination.Params

	updateErr error
	updated   *company.Company

	deleteErr error
	deletedID uuid.UUID
}

func (m *mockCompanyRepo) Create(_ context.Context, c company.Company) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = &c
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	c, ok := m.byID[id]
	if !ok {
		return company.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (company.Company, error) {
	c, ok := m.byOwner[ownerID]
	if !ok {
		return company.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) List(_ context.Context, f repository.CompanyFilter, p pagination.Params) ([]company.Company, int, error) {
	m.lastFilter = f
	m.lastParams = p
	return m.listItems, m.listTotal, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, c company.Company) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = &c
	return nil
}

func (m *mockCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockCategoryRepo struct {
	byID   map[uuid.UUID]category.Category
	counts []category.WithJobCount

	createErr error
	created   *category.Category

	updateErr error
	updated   *category.Category

	deleteErr error
	deletedID uuid.UUID
}

func (m *mockCategoryRepo) Create(_ context.Context, c category.Category) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = &c
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (category.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return category.Category{}, repository.ErrCategoryNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) GetAll(context.Context) ([]category.Category, error) { return nil, nil }

func (m *mockCategoryRepo) GetAllWithJobCounts(context.Context) ([]category.WithJobCount, error) {
	return m.counts, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, c category.Category) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = &c
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockSkillRepo struct {
	byID     map[uuid.UUID]skill.Skill
	all      []skill.Skill
	existing map[uuid.UUID]bool
	refs     int

	lastSearch string

	createErr error
	created   *skill.Skill

	deleteErr error
	deletedID uuid.UUID
}

func (m *mockSkillRepo) Create(_ context.Context, s skill.Skill) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = &s
	return nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	s, ok := m.byID[id]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockSkillRepo) GetAll(_ context.Context, search string) ([]skill.Skill, error) {
	m.lastSearch = search
	return m.all, nil
}

func (m *mockSkillRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if m.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (m *mockSkillRepo) CountRefs(context.Context, uuid.UUID) (int, error) { return m.refs, nil }

func (m *mockSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockJobRepo struct {
	byID    map[uuid.UUID]job.Job
	listing job.Listing

	createErr     error
	created       *job.Job
	createdSkills []skill.JobSkill

	updateErr      error
	updated        *job.Job
	updatedSkills  []skill.JobSkill
	replacedSkills bool

	statusErr error
	statusSet job.Status

	deleteErr error
	deletedID uuid.UUID

	searchItems []job.Listing
	searchTotal int
	searchErr   error
	lastQuery   search.Query
	lastParams  pagination.Params

	listItems  []job.Listing
	listTotal  int
	listStatus job.Status

	categoryCount int
	companyCount  int

	stats job.Stats

	expired   int64
	expireErr error
	expireNow time.Time
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job, skills []skill.JobSkill) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = &j
	m.createdSkills = skills
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) GetListingByID(context.Context, uuid.UUID) (job.Listing, error) {
	return m.listing, nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job, skills []skill.JobSkill, replaceSkills bool) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = &j
	m.updatedSkills = skills
	m.replacedSkills = replaceSkills
	return nil
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status job.Status, _ time.Time) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statusSet = status
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockJobRepo) Search(_ context.Context, q search.Query, p pagination.Params) ([]job.Listing, int, error) {
	m.lastQuery = q
	m.lastParams = p
	if m.searchErr != nil {
		return nil, 0, m.searchErr
	}
	return m.searchItems, m.searchTotal, nil
}

func (m *mockJobRepo) ListByCompany(_ context.Context, _ uuid.UUID, status job.Status, p pagination.Params) ([]job.Listing, int, error) {
	m.listStatus = status
	m.lastParams = p
	return m.listItems, m.listTotal, nil
}

func (m *mockJobRepo) CountByCategory(context.Context, uuid.UUID) (int, error) {
	return m.categoryCount, nil
}

func (m *mockJobRepo) CountByCompany(context.Context, uuid.UUID) (int, error) {
	return m.companyCount, nil
}

func (m *mockJobRepo) Stats(context.Context, uuid.UUID) (job.Stats, error) { return m.stats, nil }

func (m *mockJobRepo) ExpireOld(_ context.Context, now time.Time) (int64, error) {
	if m.expireErr != nil {
		return 0, m.expireErr
	}
	m.expireNow = now
	return m.expired, nil
}

type mockJobSkillRepo struct {
	byJob map[uuid.UUID][]skill.JobSkillDetail
}

func (m *mockJobSkillRepo) FindByJobID(_ context.Context, jobID uuid.UUID) ([]skill.JobSkillDetail, error) {
	return m.byJob[jobID], nil
}

type mockUserSkillRepo struct {
	byUser map[uuid.UUID][]skill.UserSkillDetail

	addErr error
	added  *skill.UserSkill

	removeErr error
	removed   []uuid.UUID

	replaceErr error
	replaced   []skill.UserSkill
}

func (m *mockUserSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.UserSkillDetail, error) {
	return m.byUser[userID], nil
}

func (m *mockUserSkillRepo) Add(_ context.Context, us skill.UserSkill) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = &us
	return nil
}

func (m *mockUserSkillRepo) Remove(_ context.Context, _, skillID uuid.UUID) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, skillID)
	return nil
}

func (m *mockUserSkillRepo) Replace(_ context.Context, _ uuid.UUID, skills []skill.UserSkill) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = skills
	return nil
}

type mockApplicationRepo struct {
	byID   map[uuid.UUID]application.Application
	exists bool

	createErr error
	created   *application.Application

	details      []application.Detail
	detailsTotal int

	received      []application.Received
	receivedTotal int
	lastStatus    application.Status
	lastParams    pagination.Params

	statusErr error
	statusSet application.Status

	jobCount int
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = &a
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) ExistsByJobAndApplicant(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.exists, nil
}

func (m *mockApplicationRepo) ListByApplicant(_ context.Context, _ uuid.UUID, p pagination.Params) ([]application.Detail, int, error) {
	m.lastParams = p
	return m.details, m.detailsTotal, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, _ uuid.UUID, status application.Status, p pagination.Params) ([]application.Received, int, error) {
	m.lastStatus = status
	m.lastParams = p
	return m.received, m.receivedTotal, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status application.Status, _ time.Time) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statusSet = status
	return nil
}

func (m *mockApplicationRepo) CountByJob(context.Context, uuid.UUID) (int, error) {
	return m.jobCount, nil
}
