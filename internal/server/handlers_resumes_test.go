package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-studio/internal/db"
	"github.com/jonathan/cv-studio/internal/server/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for handler tests. It mirrors the database
// contracts the handlers rely on: unique slugs, nil for missing records, and
// at most one featured resume per owner.
type fakeStore struct {
	*fakeUserDB
	resumes map[uuid.UUID]*db.ResumeRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		fakeUserDB: newFakeUserDB(),
		resumes:    make(map[uuid.UUID]*db.ResumeRecord),
	}
}

func (f *fakeStore) slugInUse(slug string, except uuid.UUID) bool {
	for _, rec := range f.resumes {
		if rec.Slug == slug && rec.ID != except {
			return true
		}
	}
	return false
}

func (f *fakeStore) CreateResume(_ context.Context, ownerID uuid.UUID, title, slug string, document json.RawMessage) (*db.ResumeRecord, error) {
	if f.slugInUse(slug, uuid.Nil) {
		return nil, db.ErrSlugTaken
	}
	now := time.Now()
	rec := &db.ResumeRecord{
		ID: uuid.New(), OwnerID: ownerID, Title: title, Slug: slug,
		Document: document, CreatedAt: now, UpdatedAt: now,
	}
	f.resumes[rec.ID] = rec
	copy := *rec
	return &copy, nil
}

func (f *fakeStore) GetResume(_ context.Context, ownerID, resumeID uuid.UUID) (*db.ResumeRecord, error) {
	rec, ok := f.resumes[resumeID]
	if !ok || rec.OwnerID != ownerID {
		return nil, nil
	}
	copy := *rec
	return &copy, nil
}

func (f *fakeStore) ListResumesByOwner(_ context.Context, ownerID uuid.UUID) ([]db.ResumeRecord, error) {
	var out []db.ResumeRecord
	for _, rec := range f.resumes {
		if rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateResume(_ context.Context, ownerID, resumeID uuid.UUID, patch db.ResumePatch) (*db.ResumeRecord, error) {
	rec, ok := f.resumes[resumeID]
	if !ok || rec.OwnerID != ownerID {
		return nil, nil
	}
	if patch.Slug != nil && f.slugInUse(*patch.Slug, resumeID) {
		return nil, db.ErrSlugTaken
	}
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Slug != nil {
		rec.Slug = *patch.Slug
	}
	if patch.Public != nil {
		rec.Public = *patch.Public
	}
	if patch.Document != nil {
		rec.Document = patch.Document
	}
	rec.UpdatedAt = time.Now()
	copy := *rec
	return &copy, nil
}

func (f *fakeStore) DeleteResume(_ context.Context, ownerID, resumeID uuid.UUID) (bool, error) {
	rec, ok := f.resumes[resumeID]
	if !ok || rec.OwnerID != ownerID {
		return false, nil
	}
	delete(f.resumes, resumeID)
	return true, nil
}

func (f *fakeStore) SetFeatured(_ context.Context, ownerID, resumeID uuid.UUID) error {
	target, ok := f.resumes[resumeID]
	if !ok || target.OwnerID != ownerID {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	for _, rec := range f.resumes {
		if rec.OwnerID == ownerID {
			rec.Featured = false
		}
	}
	target.Featured = true
	return nil
}

func (f *fakeStore) GetPublicBySlug(_ context.Context, slug string) (*db.ResumeRecord, error) {
	for _, rec := range f.resumes {
		if rec.Slug == slug && rec.Public {
			copy := *rec
			return &copy, nil
		}
	}
	return nil, nil
}

func testServer() (*Server, *fakeStore) {
	fake := newFakeStore()
	return &Server{store: fake}, fake
}

// authedRequest builds a request carrying an authenticated user ID, the way
// the auth middleware would.
func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey(), userID)
	return req.WithContext(ctx)
}

func createResume(t *testing.T, s *Server, userID uuid.UUID, body string) db.ResumeRecord {
	t.Helper()
	req := authedRequest("POST", "/resumes", []byte(body), userID)
	rec := httptest.NewRecorder()
	s.handleCreateResume(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out db.ResumeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateResume(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()

	out := createResume(t, s, userID, `{"title":"Backend Engineer"}`)

	assert.Equal(t, "Backend Engineer", out.Title)
	assert.Equal(t, "backend-engineer", out.Slug, "slug derived from the title")
	assert.Equal(t, userID, out.OwnerID)
	assert.False(t, out.Public, "new resumes start private")
	assert.Contains(t, string(out.Document), `"name":"Backend Engineer"`)
}

func TestCreateResume_ExplicitSlugAndName(t *testing.T) {
	s, _ := testServer()

	out := createResume(t, s, uuid.New(), `{"title":"CV 2026","slug":"jane","name":"Jane Doe"}`)

	assert.Equal(t, "jane", out.Slug)
	assert.Contains(t, string(out.Document), `"name":"Jane Doe"`)
}

func TestCreateResume_SlugConflict(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()

	createResume(t, s, userID, `{"title":"One","slug":"taken"}`)

	req := authedRequest("POST", "/resumes", []byte(`{"title":"Two","slug":"taken"}`), userID)
	rec := httptest.NewRecorder()
	s.handleCreateResume(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "slug already taken")
}

func TestCreateResume_MissingTitle(t *testing.T) {
	s, _ := testServer()

	req := authedRequest("POST", "/resumes", []byte(`{"slug":"no-title"}`), uuid.New())
	rec := httptest.NewRecorder()
	s.handleCreateResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResume_NotFoundAndWrongOwner(t *testing.T) {
	s, _ := testServer()
	owner := uuid.New()
	created := createResume(t, s, owner, `{"title":"Mine"}`)

	req := authedRequest("GET", "/resumes/"+uuid.NewString(), nil, owner)
	req.SetPathValue("id", uuid.NewString())
	rec := httptest.NewRecorder()
	s.handleGetResume(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Another owner cannot see the record at all.
	req = authedRequest("GET", "/resumes/"+created.ID.String(), nil, uuid.New())
	req.SetPathValue("id", created.ID.String())
	rec = httptest.NewRecorder()
	s.handleGetResume(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Re-applying the same autosave patch must converge on the same record state.
func TestUpdateResume_Idempotent(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()
	created := createResume(t, s, userID, `{"title":"Draft"}`)

	patch := `{"title":"Final","public":true,"document":{"basics":{"name":"Jane","summary":"Engineer."}}}`

	var states []db.ResumeRecord
	for i := 0; i < 2; i++ {
		req := authedRequest("PATCH", "/resumes/"+created.ID.String(), []byte(patch), userID)
		req.SetPathValue("id", created.ID.String())
		rec := httptest.NewRecorder()
		s.handleUpdateResume(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out db.ResumeRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		states = append(states, out)
	}

	assert.Equal(t, states[0].Title, states[1].Title)
	assert.Equal(t, states[0].Slug, states[1].Slug)
	assert.Equal(t, states[0].Public, states[1].Public)
	assert.JSONEq(t, string(states[0].Document), string(states[1].Document))
}

func TestUpdateResume_RejectsInvalidDocument(t *testing.T) {
	s, store := testServer()
	userID := uuid.New()
	created := createResume(t, s, userID, `{"title":"Draft"}`)

	body := `{"document":{"basics":{"name":42}}}`
	req := authedRequest("PATCH", "/resumes/"+created.ID.String(), []byte(body), userID)
	req.SetPathValue("id", created.ID.String())
	rec := httptest.NewRecorder()
	s.handleUpdateResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	stored := store.resumes[created.ID]
	assert.JSONEq(t, string(created.Document), string(stored.Document), "rejected update must not persist")
}

func TestUpdateResume_SlugConflict(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()
	createResume(t, s, userID, `{"title":"One","slug":"taken"}`)
	second := createResume(t, s, userID, `{"title":"Two","slug":"free"}`)

	body := `{"slug":"taken"}`
	req := authedRequest("PATCH", "/resumes/"+second.ID.String(), []byte(body), userID)
	req.SetPathValue("id", second.ID.String())
	rec := httptest.NewRecorder()
	s.handleUpdateResume(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteResume(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()
	created := createResume(t, s, userID, `{"title":"Ephemeral"}`)

	req := authedRequest("DELETE", "/resumes/"+created.ID.String(), nil, userID)
	req.SetPathValue("id", created.ID.String())
	rec := httptest.NewRecorder()
	s.handleDeleteResume(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	req = authedRequest("DELETE", "/resumes/"+created.ID.String(), nil, userID)
	req.SetPathValue("id", created.ID.String())
	s.handleDeleteResume(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Featuring a resume must atomically unfeature every other record of the
// same owner.
func TestSetFeatured_Exclusive(t *testing.T) {
	s, store := testServer()
	userID := uuid.New()
	first := createResume(t, s, userID, `{"title":"First"}`)
	second := createResume(t, s, userID, `{"title":"Second"}`)

	feature := func(id uuid.UUID) {
		req := authedRequest("POST", "/resumes/"+id.String()+"/featured", nil, userID)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()
		s.handleSetFeatured(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	feature(first.ID)
	feature(second.ID)

	assert.False(t, store.resumes[first.ID].Featured)
	assert.True(t, store.resumes[second.ID].Featured)
}

func TestScoreResume(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()
	created := createResume(t, s, userID, `{"title":"Scored","name":"Jane Doe"}`)

	req := authedRequest("GET", "/resumes/"+created.ID.String()+"/score", nil, userID)
	req.SetPathValue("id", created.ID.String())
	rec := httptest.NewRecorder()
	s.handleScoreResume(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Total      int    `json:"total"`
		Band       string `json:"band"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 5, result.Total, "a bare name earns only the name points")
	assert.Equal(t, "Needs Work", result.Band)
	assert.Len(t, result.Categories, 5)
}

func TestPreviewResume(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()
	created := createResume(t, s, userID, `{"title":"Preview","name":"Jane Doe"}`)

	req := authedRequest("GET", "/resumes/"+created.ID.String()+"/preview?zoom=0.75", nil, userID)
	req.SetPathValue("id", created.ID.String())
	rec := httptest.NewRecorder()
	s.handlePreviewResume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Body.String(), `data-zoom="0.75"`)
}

func TestPublicResume(t *testing.T) {
	s, _ := testServer()
	userID := uuid.New()
	created := createResume(t, s, userID, `{"title":"Shared","slug":"jane","name":"Jane Doe"}`)

	// Private at first: the public view must not exist.
	req := httptest.NewRequest("GET", "/p/jane", nil)
	req.SetPathValue("slug", "jane")
	rec := httptest.NewRecorder()
	s.handlePublicResume(rec, req)
	privateBody := rec.Body.String()
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A nonexistent slug must be indistinguishable from a private one.
	req = httptest.NewRequest("GET", "/p/no-such-slug", nil)
	req.SetPathValue("slug", "no-such-slug")
	rec = httptest.NewRecorder()
	s.handlePublicResume(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, privateBody, rec.Body.String())

	// Publish, then the view renders.
	patch := authedRequest("PATCH", "/resumes/"+created.ID.String(), []byte(`{"public":true}`), userID)
	patch.SetPathValue("id", created.ID.String())
	rec = httptest.NewRecorder()
	s.handleUpdateResume(rec, patch)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/p/jane", nil)
	req.SetPathValue("slug", "jane")
	rec = httptest.NewRecorder()
	s.handlePublicResume(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestListResumes_EmptyIsJSONArray(t *testing.T) {
	s, _ := testServer()

	req := authedRequest("GET", "/resumes", nil, uuid.New())
	rec := httptest.NewRecorder()
	s.handleListResumes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandlers_RequireAuth(t *testing.T) {
	s, _ := testServer()

	req := httptest.NewRequest("GET", "/resumes", nil)
	rec := httptest.NewRecorder()
	s.handleListResumes(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
