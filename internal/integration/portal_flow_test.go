package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/database/migration"
	dbpostgres "github.com/Ankit73-bit/job-portal-backend/internal/database/postgres"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/middleware"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/routes"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"
)

// wireEnvelope decodes both the success and the error envelope.
type wireEnvelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Pagination *pagination.Pagination `json:"pagination"`
	Error      *struct {
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type authData struct {
	User struct {
		ID   uuid.UUID `json:"id"`
		Role string    `json:"role"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

type jobData struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
	Skills []struct {
		SkillID    uuid.UUID `json:"skillId"`
		IsRequired bool      `json:"isRequired"`
	} `json:"skills"`
}

func TestIntegration_JobLifecycleSearchAndApplications(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	app := newTestApp(t, db)

	var cl cleanupIDs
	defer cl.run(ctx, db)

	skillGo := ensureSkill(t, ctx, db, "it-flow-go")
	skillSQL := ensureSkill(t, ctx, db, "it-flow-postgresql")
	skillUnrelated := ensureSkill(t, ctx, db, "it-flow-unrelated")
	cl.skillIDs = append(cl.skillIDs, skillGo, skillSQL, skillUnrelated)

	employerTok, employerID := registerOrLogin(t, app, "employer.flow@example.test", "EMPLOYER")
	seekerTok, seekerID := registerOrLogin(t, app, "seeker.flow@example.test", "JOB_SEEKER")
	cl.userIDs = append(cl.userIDs, employerID, seekerID)

	companyID := createCompany(t, app, employerTok)
	cl.companyIDs = append(cl.companyIDs, companyID)

	jobID := createJob(t, app, employerTok, skillGo, skillSQL)
	cl.jobIDs = append(cl.jobIDs, jobID)

	// DRAFT jobs are invisible to the public search.
	if searchHasJob(t, app, "skills="+skillGo.String(), jobID) {
		t.Fatalf("draft job leaked into the public search")
	}

	publishJob(t, app, employerTok, jobID)

	if !searchHasJob(t, app, "skills="+skillGo.String(), jobID) {
		t.Fatalf("published job missing from skill search")
	}
	if searchHasJob(t, app, "skills="+skillUnrelated.String(), jobID) {
		t.Fatalf("job matched a skill it does not have")
	}

	// salaryMin matches when the job can pay at least that much.
	if !searchHasJob(t, app, "salaryMin=5000", jobID) {
		t.Fatalf("job with salaryMax 6000 should match salaryMin=5000")
	}
	if searchHasJob(t, app, "salaryMin=7000", jobID) {
		t.Fatalf("job with salaryMax 6000 should not match salaryMin=7000")
	}

	applicationID := applyToJob(t, app, seekerTok, jobID)
	cl.applicationJobIDs = append(cl.applicationJobIDs, jobID)

	status, env := doRequest(t, app, "POST", "/api/v1/jobs/"+jobID.String()+"/apply", seekerTok, map[string]string{})
	if status != fiber.StatusConflict || env.Success {
		t.Fatalf("second apply: expected 409 error envelope, got status=%d success=%v", status, env.Success)
	}

	assertJobApplications(t, app, employerTok, jobID, applicationID)
	assertMyApplications(t, app, seekerTok, applicationID)

	status, env = doRequest(t, app, "PATCH", "/api/v1/applications/"+applicationID.String()+"/status", employerTok, map[string]string{"status": "SHORTLISTED"})
	if status != fiber.StatusOK || !env.Success {
		t.Fatalf("update status: expected 200, got status=%d message=%s", status, env.Message)
	}

	closeJob(t, app, employerTok, jobID)

	if searchHasJob(t, app, "skills="+skillGo.String(), jobID) {
		t.Fatalf("closed job still visible in the public search")
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBPORTAL_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBPORTAL_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBPORTAL_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("JOBPORTAL_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBPORTAL_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBPORTAL_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBPORTAL_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	dbcfg := config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}

	db, err := dbpostgres.Connect(ctx, dbcfg)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	// this file: internal/integration/portal_flow_test.go
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found or not a dir: %s", migDir)
	}
	return migDir
}

func newTestApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "job-portal-test", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     stringsOrDefault(os.Getenv("JOBPORTAL_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
			RefreshSecret:    stringsOrDefault(os.Getenv("JOBPORTAL_TEST_JWT_REFRESH_SECRET"), "test-refresh-secret"),
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(zerolog.Nop(), true).Middleware())

	routes.NewRegistry(cfg, db).Register(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, wireEnvelope) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("%s %s: marshal body: %v", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env wireEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode error: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func registerOrLogin(t *testing.T, app *fiber.App, email, role string) (string, uuid.UUID) {
	t.Helper()

	body := map[string]string{
		"email":     email,
		"password":  "password123",
		"role":      role,
		"firstName": "Flow",
		"lastName":  "Test",
	}

	status, env := doRequest(t, app, "POST", "/api/v1/auth/register", "", body)
	if status == fiber.StatusConflict {
		status, env = doRequest(t, app, "POST", "/api/v1/auth/login", "", map[string]string{
			"email":    email,
			"password": "password123",
		})
		if status != fiber.StatusOK {
			t.Fatalf("login %s: expected 200, got %d", email, status)
		}
	} else if status != fiber.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (message=%s)", email, status, env.Message)
	}

	var ad authData
	if err := json.Unmarshal(env.Data, &ad); err != nil {
		t.Fatalf("auth %s: data unmarshal: %v", email, err)
	}
	if ad.AccessToken == "" || ad.User.ID == uuid.Nil {
		t.Fatalf("auth %s: missing token or user id", email)
	}
	return ad.AccessToken, ad.User.ID
}

func createCompany(t *testing.T, app *fiber.App, token string) uuid.UUID {
	t.Helper()

	body := map[string]any{
		"name":     "IT Flow Labs",
		"industry": "Software",
		"size":     "11-50",
		"location": "Remote",
	}

	status, env := doRequest(t, app, "POST", "/api/v1/companies", token, body)
	if status == fiber.StatusConflict {
		// stale company from an aborted earlier run
		status, env = doRequest(t, app, "GET", "/api/v1/companies/me", token, nil)
		if status != fiber.StatusOK {
			t.Fatalf("companies/me after conflict: expected 200, got %d", status)
		}
	} else if status != fiber.StatusCreated {
		t.Fatalf("create company: expected 201, got %d (message=%s)", status, env.Message)
	}

	var cd struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &cd); err != nil {
		t.Fatalf("create company: data unmarshal: %v", err)
	}
	if cd.ID == uuid.Nil {
		t.Fatalf("create company: missing id")
	}
	return cd.ID
}

func createJob(t *testing.T, app *fiber.App, token string, requiredSkill, optionalSkill uuid.UUID) uuid.UUID {
	t.Helper()

	body := map[string]any{
		"title":           "Backend Engineer (Flow)",
		"description":     "Build the job portal flow end to end.",
		"type":            "FULL_TIME",
		"experienceLevel": "MID",
		"salaryMin":       3000,
		"salaryMax":       6000,
		"currency":        "USD",
		"location":        "Remote",
		"isRemote":        true,
		"skills": []map[string]any{
			{"skillId": requiredSkill, "isRequired": true},
			{"skillId": optionalSkill, "isRequired": false},
		},
	}

	status, env := doRequest(t, app, "POST", "/api/v1/jobs", token, body)
	if status != fiber.StatusCreated {
		t.Fatalf("create job: expected 201, got %d (message=%s)", status, env.Message)
	}

	var jd jobData
	if err := json.Unmarshal(env.Data, &jd); err != nil {
		t.Fatalf("create job: data unmarshal: %v", err)
	}
	if jd.ID == uuid.Nil {
		t.Fatalf("create job: missing id")
	}
	if jd.Status != "DRAFT" {
		t.Fatalf("create job: expected DRAFT, got %s", jd.Status)
	}
	if len(jd.Skills) != 2 {
		t.Fatalf("create job: expected 2 skills, got %d", len(jd.Skills))
	}
	return jd.ID
}

func publishJob(t *testing.T, app *fiber.App, token string, jobID uuid.UUID) {
	t.Helper()

	status, env := doRequest(t, app, "POST", "/api/v1/jobs/"+jobID.String()+"/publish", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("publish job: expected 200, got %d (message=%s)", status, env.Message)
	}

	var jd jobData
	if err := json.Unmarshal(env.Data, &jd); err != nil {
		t.Fatalf("publish job: data unmarshal: %v", err)
	}
	if jd.Status != "PUBLISHED" {
		t.Fatalf("publish job: expected PUBLISHED, got %s", jd.Status)
	}
}

func closeJob(t *testing.T, app *fiber.App, token string, jobID uuid.UUID) {
	t.Helper()

	status, env := doRequest(t, app, "POST", "/api/v1/jobs/"+jobID.String()+"/close", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("close job: expected 200, got %d (message=%s)", status, env.Message)
	}
}

func searchHasJob(t *testing.T, app *fiber.App, query string, jobID uuid.UUID) bool {
	t.Helper()

	status, env := doRequest(t, app, "GET", "/api/v1/jobs?"+query, "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("search %q: expected 200, got %d (message=%s)", query, status, env.Message)
	}
	if env.Pagination == nil {
		t.Fatalf("search %q: missing pagination block", query)
	}

	var items []struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("search %q: data unmarshal: %v", query, err)
	}
	for _, it := range items {
		if it.ID == jobID {
			return true
		}
	}
	return false
}

func applyToJob(t *testing.T, app *fiber.App, token string, jobID uuid.UUID) uuid.UUID {
	t.Helper()

	status, env := doRequest(t, app, "POST", "/api/v1/jobs/"+jobID.String()+"/apply", token, map[string]string{
		"coverLetter": "I built this flow.",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("apply: expected 201, got %d (message=%s)", status, env.Message)
	}

	var ad struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &ad); err != nil {
		t.Fatalf("apply: data unmarshal: %v", err)
	}
	if ad.ID == uuid.Nil {
		t.Fatalf("apply: missing id")
	}
	if ad.Status != "PENDING" {
		t.Fatalf("apply: expected PENDING, got %s", ad.Status)
	}
	return ad.ID
}

func assertJobApplications(t *testing.T, app *fiber.App, token string, jobID, applicationID uuid.UUID) {
	t.Helper()

	status, env := doRequest(t, app, "GET", "/api/v1/jobs/"+jobID.String()+"/applications", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("job applications: expected 200, got %d (message=%s)", status, env.Message)
	}

	var items []struct {
		ID             uuid.UUID `json:"id"`
		ApplicantEmail string    `json:"applicantEmail"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("job applications: data unmarshal: %v", err)
	}

	for _, it := range items {
		if it.ID == applicationID {
			if it.ApplicantEmail == "" {
				t.Fatalf("job applications: missing applicant email")
			}
			return
		}
	}
	t.Fatalf("job applications: application %s not listed", applicationID)
}

func assertMyApplications(t *testing.T, app *fiber.App, token string, applicationID uuid.UUID) {
	t.Helper()

	status, env := doRequest(t, app, "GET", "/api/v1/applications/me", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("my applications: expected 200, got %d (message=%s)", status, env.Message)
	}

	var items []struct {
		ID       uuid.UUID `json:"id"`
		JobTitle string    `json:"jobTitle"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("my applications: data unmarshal: %v", err)
	}

	for _, it := range items {
		if it.ID == applicationID {
			if it.JobTitle == "" {
				t.Fatalf("my applications: missing job title")
			}
			return
		}
	}
	t.Fatalf("my applications: application %s not listed", applicationID)
}

func ensureSkill(t *testing.T, ctx context.Context, db database.DB, name string) uuid.UUID {
	t.Helper()

	_, err := db.Exec(ctx,
		`INSERT INTO skills (id, name) VALUES ($1, $2)
		 ON CONFLICT (lower(name)) DO NOTHING`,
		uuid.New(), name,
	)
	if err != nil {
		t.Fatalf("seed skill %s: %v", name, err)
	}

	row := db.QueryRow(ctx, `SELECT id FROM skills WHERE lower(name) = lower($1) LIMIT 1`, name)
	var got uuid.UUID
	if err := row.Scan(&got); err != nil {
		t.Fatalf("seed skill select %s: %v", name, err)
	}
	return got
}

// cleanupIDs tears the seeded rows back down so reruns start clean.
type cleanupIDs struct {
	applicationJobIDs []uuid.UUID
	jobIDs            []uuid.UUID
	companyIDs        []uuid.UUID
	userIDs           []uuid.UUID
	skillIDs          []uuid.UUID
}

func (c cleanupIDs) run(ctx context.Context, db database.DB) {
	for _, id := range c.applicationJobIDs {
		_, _ = db.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id)
	}
	for _, id := range c.jobIDs {
		_, _ = db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	}
	for _, id := range c.companyIDs {
		_, _ = db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	}
	for _, id := range c.userIDs {
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	}
	for _, id := range c.skillIDs {
		_, _ = db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	}
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
