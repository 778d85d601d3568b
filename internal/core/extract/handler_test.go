package extract

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extractor/internal/core/job"
	"extractor/internal/core/taxonomy"
	"extractor/internal/domain"
	rds "extractor/internal/platform/redis"
)

type stubFetcher struct {
	fragment domain.ScrapedFragment
	err      error
	urls     []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (domain.ScrapedFragment, error) {
	f.urls = append(f.urls, url)
	return f.fragment, f.err
}

type stubNormalizer struct {
	record domain.ToolRecord
	err    error
	calls  int
}

func (n *stubNormalizer) Normalize(_ context.Context, _ string, _ domain.ScrapedFragment) (domain.ToolRecord, error) {
	n.calls++
	return n.record, n.err
}

type memoryStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
}

func (m *memoryStore) CacheGet(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return rds.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (m *memoryStore) CacheSet(_ context.Context, key string, val interface{}, _ int) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

type captureEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (e *captureEnqueuer) Enqueue(task *asynq.Task, _ string, _ int) error {
	if e.err != nil {
		return e.err
	}
	e.tasks = append(e.tasks, task)
	return nil
}

func newTestApp(svc *Service, runner *JobRunner) *fiber.App {
	app := fiber.New()
	h := NewHandler(svc, runner, taxonomy.Default())
	app.Get("/v1/extract", h.HandleGetExtract)
	app.Post("/v1/extract", h.HandlePostExtract)
	app.Post("/v1/extract/jobs", h.HandleCreateJob)
	app.Get("/v1/extract/jobs/:jobId", h.HandleGetJob)
	app.Get("/v1/taxonomy", h.HandleTaxonomy)
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out interface{}) int {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleGetExtract(t *testing.T) {
	fetcher := &stubFetcher{fragment: domain.ScrapedFragment{Title: "Acme AI"}}
	normalizer := &stubNormalizer{record: domain.ToolRecord{Name: "Acme AI"}.WithDefaults()}
	app := newTestApp(NewService(fetcher, normalizer, nil), nil)

	var resp Response
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/v1/extract?url=acme.example", nil), &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Equal(t, "https://acme.example", resp.URL)
	assert.Equal(t, "Acme AI", resp.Record.Name)
	assert.Equal(t, []string{"https://acme.example"}, fetcher.urls)
}

func TestHandlePostExtract(t *testing.T) {
	normalizer := &stubNormalizer{record: domain.ToolRecord{Name: "Acme AI"}.WithDefaults()}
	app := newTestApp(NewService(&stubFetcher{fragment: domain.ScrapedFragment{Title: "Acme AI"}}, normalizer, nil), nil)

	var resp Response
	status := doJSON(t, app, postJSON("/v1/extract", `{"url":"https://acme.example"}`), &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme AI", resp.Record.Name)
}

func TestHandleExtractErrors(t *testing.T) {
	tests := []struct {
		name       string
		fetchErr   error
		normErr    error
		request    *http.Request
		wantStatus int
		wantStage  string
	}{
		{
			name:       "missing url",
			request:    httptest.NewRequest(http.MethodGet, "/v1/extract", nil),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			request:    postJSON("/v1/extract", `{"url":`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "fetch failure",
			fetchErr:   &domain.FetchError{URL: "https://acme.example", Attempts: []error{errors.New("direct: unexpected status 500")}},
			request:    httptest.NewRequest(http.MethodGet, "/v1/extract?url=acme.example", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantStage:  "fetch",
		},
		{
			name:       "missing search key",
			fetchErr:   &domain.FetchError{URL: "https://acme.example", Attempts: []error{domain.MissingSetting("SERPAPI_API_KEY")}},
			request:    httptest.NewRequest(http.MethodGet, "/v1/extract?url=acme.example", nil),
			wantStatus: http.StatusServiceUnavailable,
			wantStage:  "fetch",
		},
		{
			name:       "missing model key",
			normErr:    domain.MissingSetting("GEMINI_API_KEY"),
			request:    httptest.NewRequest(http.MethodGet, "/v1/extract?url=acme.example", nil),
			wantStatus: http.StatusServiceUnavailable,
			wantStage:  "normalize",
		},
		{
			name:       "invalid model output",
			normErr:    domain.NewNormalizationError("missing keys: tags", nil),
			request:    httptest.NewRequest(http.MethodGet, "/v1/extract?url=acme.example", nil),
			wantStatus: http.StatusBadGateway,
			wantStage:  "normalize",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &stubFetcher{fragment: domain.ScrapedFragment{Title: "Acme AI"}, err: tt.fetchErr}
			normalizer := &stubNormalizer{err: tt.normErr}
			app := newTestApp(NewService(fetcher, normalizer, nil), nil)

			var resp ErrorResponse
			status := doJSON(t, app, tt.request, &resp)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.wantStage, resp.Stage)
			if tt.fetchErr != nil {
				assert.Zero(t, normalizer.calls)
			}
		})
	}
}

func TestHandleTaxonomy(t *testing.T) {
	app := newTestApp(NewService(&stubFetcher{}, &stubNormalizer{}, nil), nil)

	var resp TaxonomyResponse
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/v1/taxonomy", nil), &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Categories, 12)
	assert.Len(t, resp.Subcategories, 39)
	assert.Len(t, resp.Tags, 100)
}

func TestExtractJobLifecycle(t *testing.T) {
	normalizer := &stubNormalizer{record: domain.ToolRecord{Name: "Acme AI"}.WithDefaults()}
	svc := NewService(&stubFetcher{fragment: domain.ScrapedFragment{Title: "Acme AI"}}, normalizer, nil)
	enqueuer := &captureEnqueuer{}
	runner := NewJobRunner(svc, job.NewJobService(&memoryStore{data: map[string][]byte{}}), enqueuer, 0, nil)
	app := newTestApp(svc, runner)

	var created JobCreatedResponse
	status := doJSON(t, app, postJSON("/v1/extract/jobs", `{"url":"acme.example"}`), &created)
	require.Equal(t, http.StatusAccepted, status)
	require.NotEmpty(t, created.JobID)
	assert.Equal(t, job.StatusPending, created.Status)
	require.Len(t, enqueuer.tasks, 1)

	var pending JobResponse
	status = doJSON(t, app, httptest.NewRequest(http.MethodGet, "/v1/extract/jobs/"+created.JobID, nil), &pending)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, job.StatusPending, pending.Status)
	assert.Equal(t, "https://acme.example", pending.URL)

	require.NoError(t, runner.HandleTask(context.Background(), enqueuer.tasks[0]))

	var done JobResponse
	status = doJSON(t, app, httptest.NewRequest(http.MethodGet, "/v1/extract/jobs/"+created.JobID, nil), &done)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, job.StatusCompleted, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, "Acme AI", done.Result.Name)
}

func TestExtractJobFailureIsTerminal(t *testing.T) {
	fetcher := &stubFetcher{err: &domain.FetchError{URL: "https://acme.example"}}
	svc := NewService(fetcher, &stubNormalizer{}, nil)
	enqueuer := &captureEnqueuer{}
	jobs := job.NewJobService(&memoryStore{data: map[string][]byte{}})
	runner := NewJobRunner(svc, jobs, enqueuer, 0, nil)

	jobID, err := runner.Submit(context.Background(), "https://acme.example")
	require.NoError(t, err)
	require.NoError(t, runner.HandleTask(context.Background(), enqueuer.tasks[0]))

	j, err := jobs.GetJobStatus(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, j.Status)
	assert.Equal(t, domain.StageFetch, j.Stage)
}

func TestExtractJobRejectsBadPayload(t *testing.T) {
	runner := NewJobRunner(NewService(&stubFetcher{}, &stubNormalizer{}, nil),
		job.NewJobService(&memoryStore{data: map[string][]byte{}}), &captureEnqueuer{}, 0, nil)

	err := runner.HandleTask(context.Background(), asynq.NewTask("extract:task", []byte(`{}`)))

	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleGetJobNotFound(t *testing.T) {
	svc := NewService(&stubFetcher{}, &stubNormalizer{}, nil)
	runner := NewJobRunner(svc, job.NewJobService(&memoryStore{data: map[string][]byte{}}), &captureEnqueuer{}, 0, nil)
	app := newTestApp(svc, runner)

	var resp ErrorResponse
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/v1/extract/jobs/nope", nil), &resp)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, resp.Error, "job not found")
}

func TestHandleGetJobStoreUnavailable(t *testing.T) {
	svc := NewService(&stubFetcher{}, &stubNormalizer{}, nil)
	store := &memoryStore{data: map[string][]byte{}, getErr: errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")}
	runner := NewJobRunner(svc, job.NewJobService(store), &captureEnqueuer{}, 0, nil)
	app := newTestApp(svc, runner)

	var resp ErrorResponse
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/v1/extract/jobs/abc", nil), &resp)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, resp.Error, "job not found")
}

func TestCreateJobWithoutQueue(t *testing.T) {
	app := newTestApp(NewService(&stubFetcher{}, &stubNormalizer{}, nil), nil)

	status := doJSON(t, app, postJSON("/v1/extract/jobs", `{"url":"acme.example"}`), nil)

	assert.Equal(t, http.StatusServiceUnavailable, status)
}
