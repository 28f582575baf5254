package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
)

type jobMocks struct {
	jobs       *mockJobRepo
	jobSkills  *mockJobSkillRepo
	companies  *mockCompanyRepo
	categories *mockCategoryRepo
	skills     *mockSkillRepo
	apps       *mockApplicationRepo
}

func newJobMocks() *jobMocks {
	return &jobMocks{
		jobs:       &mockJobRepo{},
		jobSkills:  &mockJobSkillRepo{},
		companies:  &mockCompanyRepo{},
		categories: &mockCategoryRepo{},
		skills:     &mockSkillRepo{},
		apps:       &mockApplicationRepo{},
	}
}

func (m *jobMocks) usecase() *Job {
	return NewJobUsecase(m.jobs, m.jobSkills, m.companies, m.categories, m.skills, m.apps)
}

// seedOwnedJob stores a job whose company belongs to ownerID and
// returns the job id.
func (m *jobMocks) seedOwnedJob(ownerID uuid.UUID, status job.Status) uuid.UUID {
	companyID := uuid.New()
	jobID := uuid.New()
	m.companies.byID = map[uuid.UUID]company.Company{
		companyID: {ID: companyID, OwnerID: ownerID},
	}
	m.jobs.byID = map[uuid.UUID]job.Job{
		jobID: {ID: jobID, CompanyID: companyID, Status: status},
	}
	return jobID
}

func validJobInput() JobInput {
	return JobInput{
		Title:           "Backend Engineer",
		Description:     "Design and build the public API.",
		Type:            string(job.TypeFullTime),
		ExperienceLevel: string(job.LevelMid),
	}
}

func TestJobUsecase_CreateJob_RequiresEmployer(t *testing.T) {
	uc := newJobMocks().usecase()

	_, err := uc.CreateJob(context.Background(), Actor{ID: uuid.New(), Role: user.RoleJobSeeker}, validJobInput())
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestJobUsecase_CreateJob_RequiresCompany(t *testing.T) {
	uc := newJobMocks().usecase()

	_, err := uc.CreateJob(context.Background(), Actor{ID: uuid.New(), Role: user.RoleEmployer}, validJobInput())
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input without a company, got %v", err)
	}
}

func TestJobUsecase_CreateJob_SalaryOrder(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	uc := m.usecase()

	in := validJobInput()
	lo, hi := 90000.0, 60000.0
	in.SalaryMin = &lo
	in.SalaryMax = &hi

	_, err := uc.CreateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, in)
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_CreateJob_PastExpiry(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	uc := m.usecase()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	in := validJobInput()
	past := fixed.Add(-time.Hour)
	in.ExpiresAt = &past

	_, err := uc.CreateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, in)
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_CreateJob_UnknownSkill(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	uc := m.usecase()

	in := validJobInput()
	in.Skills = []JobSkillInput{{SkillID: uuid.New(), IsRequired: true}}

	_, err := uc.CreateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, in)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if m.jobs.created != nil {
		t.Fatalf("create must not reach the store")
	}
}

func TestJobUsecase_CreateJob_DuplicateSkill(t *testing.T) {
	actorID := uuid.New()
	skillID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	m.skills.existing = map[uuid.UUID]bool{skillID: true}
	uc := m.usecase()

	in := validJobInput()
	in.Skills = []JobSkillInput{{SkillID: skillID}, {SkillID: skillID, IsRequired: true}}

	_, err := uc.CreateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, in)
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_CreateJob_StartsDraft(t *testing.T) {
	actorID := uuid.New()
	companyID := uuid.New()
	skillID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: companyID, OwnerID: actorID},
	}
	m.skills.existing = map[uuid.UUID]bool{skillID: true}
	uc := m.usecase()

	in := validJobInput()
	in.Skills = []JobSkillInput{{SkillID: skillID, IsRequired: true}}

	if _, err := uc.CreateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	created := m.jobs.created
	if created == nil {
		t.Fatalf("job not persisted")
	}
	if created.Status != job.StatusDraft {
		t.Fatalf("new jobs must start as DRAFT, got %s", created.Status)
	}
	if created.CompanyID != companyID || created.PostedBy != actorID {
		t.Fatalf("job not bound to the employer's company: %+v", created)
	}
	if len(m.jobs.createdSkills) != 1 || m.jobs.createdSkills[0].JobID != created.ID || m.jobs.createdSkills[0].SkillID != skillID {
		t.Fatalf("unexpected skill rows: %+v", m.jobs.createdSkills)
	}
	if !m.jobs.createdSkills[0].IsRequired {
		t.Fatalf("isRequired flag lost")
	}
}

func TestJobUsecase_UpdateJob_NilSkillsKeepAssociations(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusPublished)
	uc := m.usecase()

	in := validJobInput()
	if _, err := uc.UpdateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.jobs.replacedSkills {
		t.Fatalf("nil skills must leave associations alone")
	}

	in.Skills = []JobSkillInput{}
	if _, err := uc.UpdateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !m.jobs.replacedSkills {
		t.Fatalf("an empty non-nil slice must clear associations")
	}
	if len(m.jobs.updatedSkills) != 0 {
		t.Fatalf("expected no replacement rows, got %+v", m.jobs.updatedSkills)
	}
}

func TestJobUsecase_UpdateJob_KeepsStatus(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusPublished)
	uc := m.usecase()

	if _, err := uc.UpdateJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID, validJobInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.jobs.updated == nil || m.jobs.updated.Status != job.StatusPublished {
		t.Fatalf("editing must not change status: %+v", m.jobs.updated)
	}
}

func TestJobUsecase_PublishJob_NotOwner(t *testing.T) {
	m := newJobMocks()
	jobID := m.seedOwnedJob(uuid.New(), job.StatusDraft)
	uc := m.usecase()

	_, err := uc.PublishJob(context.Background(), Actor{ID: uuid.New(), Role: user.RoleEmployer}, jobID)
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestJobUsecase_PublishJob_AlreadyPublished(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusPublished)
	uc := m.usecase()

	_, err := uc.PublishJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID)
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_PublishJob_FromClosed(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusClosed)
	uc := m.usecase()

	if _, err := uc.PublishJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.jobs.statusSet != job.StatusPublished {
		t.Fatalf("expected status PUBLISHED, got %s", m.jobs.statusSet)
	}
}

func TestJobUsecase_CloseJob_AlreadyClosed(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusClosed)
	uc := m.usecase()

	_, err := uc.CloseJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID)
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_DeleteJob_WithApplications(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusPublished)
	m.apps.jobCount = 5
	uc := m.usecase()

	err := uc.DeleteJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID)
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if m.jobs.deletedID != uuid.Nil {
		t.Fatalf("delete must not reach the store")
	}
}

func TestJobUsecase_DeleteJob_Success(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	jobID := m.seedOwnedJob(actorID, job.StatusDraft)
	uc := m.usecase()

	if err := uc.DeleteJob(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, jobID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.jobs.deletedID != jobID {
		t.Fatalf("expected delete call for %s", jobID)
	}
}

func TestJobUsecase_SearchJobs_InvalidType(t *testing.T) {
	uc := newJobMocks().usecase()

	_, _, err := uc.SearchJobs(context.Background(), SearchJobsInput{Type: "GIG"})
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_SearchJobs_CompilesAndClamps(t *testing.T) {
	m := newJobMocks()
	m.jobs.searchItems = []job.Listing{{Job: job.Job{ID: uuid.New()}}}
	m.jobs.searchTotal = 120
	uc := m.usecase()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	items, page, err := uc.SearchJobs(context.Background(), SearchJobsInput{Page: -1, Limit: 500})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(items))
	}
	if !m.jobs.lastQuery.Now.Equal(fixed) {
		t.Fatalf("expiry cutoff not captured: %v", m.jobs.lastQuery.Now)
	}
	if m.jobs.lastParams.Page != 1 || m.jobs.lastParams.Limit != 50 {
		t.Fatalf("pagination not clamped: %+v", m.jobs.lastParams)
	}
	if page.Total != 120 || page.TotalPages != 3 || !page.HasNext {
		t.Fatalf("unexpected envelope: %+v", page)
	}
}

func TestJobUsecase_MyJobs_InvalidStatus(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	uc := m.usecase()

	_, _, err := uc.MyJobs(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, MyJobsInput{Status: "LIVE"})
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJobUsecase_MyJobs_StatusFilter(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	m.jobs.listItems = []job.Listing{{Job: job.Job{ID: uuid.New()}}}
	m.jobs.listTotal = 1
	uc := m.usecase()

	items, _, err := uc.MyJobs(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer}, MyJobsInput{Status: " DRAFT "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(items))
	}
	if m.jobs.listStatus != job.StatusDraft {
		t.Fatalf("expected trimmed DRAFT filter, got %q", m.jobs.listStatus)
	}
}

func TestJobUsecase_MyJobs_NoCompany(t *testing.T) {
	uc := newJobMocks().usecase()

	_, _, err := uc.MyJobs(context.Background(), Actor{ID: uuid.New(), Role: user.RoleEmployer}, MyJobsInput{})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestJobUsecase_CompanyJobStats_Success(t *testing.T) {
	actorID := uuid.New()
	m := newJobMocks()
	m.companies.byOwner = map[uuid.UUID]company.Company{
		actorID: {ID: uuid.New(), OwnerID: actorID},
	}
	m.jobs.stats = job.Stats{TotalJobs: 7, PublishedJobs: 3, DraftJobs: 2, ClosedJobs: 1, ExpiredJobs: 1, TotalApplications: 40}
	uc := m.usecase()

	stats, err := uc.CompanyJobStats(context.Background(), Actor{ID: actorID, Role: user.RoleEmployer})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.TotalJobs != 7 || stats.TotalApplications != 40 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestJobUsecase_ExpireOldJobs_RequiresAdmin(t *testing.T) {
	uc := newJobMocks().usecase()

	_, err := uc.ExpireOldJobs(context.Background(), Actor{Role: user.RoleEmployer})
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestJobUsecase_ExpireOldJobs_Success(t *testing.T) {
	m := newJobMocks()
	m.jobs.expired = 9
	uc := m.usecase()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	n, err := uc.ExpireOldJobs(context.Background(), Actor{Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 9 {
		t.Fatalf("expected 9 expired, got %d", n)
	}
	if !m.jobs.expireNow.Equal(fixed) {
		t.Fatalf("cutoff not passed through: %v", m.jobs.expireNow)
	}
}
