package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/battlecore/internal/db"
	"github.com/JustinWhittecar/battlecore/internal/report"
)

type fakeArchive struct {
	byID      map[uuid.UUID]*db.Resolution
	err       error
	lastLimit int
}

func (f *fakeArchive) Save(_ context.Context, r *db.Resolution) error {
	f.byID[r.ID] = r
	return nil
}

func (f *fakeArchive) Get(_ context.Context, id uuid.UUID) (*db.Resolution, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.byID[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return r, nil
}

func (f *fakeArchive) List(_ context.Context, limit int) ([]db.Summary, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	var out []db.Summary
	for _, r := range f.byID {
		out = append(out, db.Summary{ID: r.ID, Title: r.Title, ReportCount: len(r.Reports)})
	}
	return out, nil
}

func (f *fakeArchive) Close() error { return nil }

func newServer(t *testing.T) (*fakeArchive, *http.ServeMux, uuid.UUID) {
	t.Helper()
	res := &db.Resolution{
		ID:        uuid.New(),
		Title:     "duel",
		CreatedAt: time.Date(3025, 1, 1, 0, 0, 0, 0, time.UTC),
		Reports: []report.Report{
			*report.New(report.MsgDamageHeader).About("Hunchback").Add(5),
			*report.New(report.MsgDamageHeader).About("Manticore").Add(10),
			*report.New(report.MsgCrewHit).About("Hunchback").Add(1).Private(),
		},
	}
	fa := &fakeArchive{byID: map[uuid.UUID]*db.Resolution{res.ID: res}}
	h := &ResolutionHandler{Archive: fa, Logger: zerolog.Nop()}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/resolutions", h.List)
	mux.HandleFunc("GET /api/resolutions/{id}", h.Get)
	mux.HandleFunc("GET /api/resolutions/{id}/reports", h.Reports)
	return fa, mux, res.ID
}

func get(mux http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListResolutions(t *testing.T) {
	fa, mux, id := newServer(t)

	rec := get(mux, "/api/resolutions")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []db.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, defaultLimit, fa.lastLimit)

	get(mux, "/api/resolutions?limit=9999")
	assert.Equal(t, maxLimit, fa.lastLimit)

	assert.Equal(t, http.StatusBadRequest, get(mux, "/api/resolutions?limit=-1").Code)

	fa.err = errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, get(mux, "/api/resolutions").Code)
}

func TestGetResolution(t *testing.T) {
	_, mux, id := newServer(t)

	rec := get(mux, "/api/resolutions/"+id.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	var res db.Resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "duel", res.Title)
	assert.Len(t, res.Reports, 3)

	assert.Equal(t, http.StatusBadRequest, get(mux, "/api/resolutions/nope").Code)
	assert.Equal(t, http.StatusNotFound, get(mux, "/api/resolutions/"+uuid.NewString()).Code)
}

func TestResolutionReportsFilter(t *testing.T) {
	_, mux, id := newServer(t)
	base := "/api/resolutions/" + id.String() + "/reports"

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"?private=1", 3},
		{"?subject=Hunchback", 1},
		{"?subject=Hunchback&private=1", 2},
		{"?msg=1000", 2},
		{"?subject=Atlas", 0},
	}
	for _, tt := range tests {
		rec := get(mux, base+tt.query)
		require.Equal(t, http.StatusOK, rec.Code, tt.query)
		var reps []report.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reps))
		assert.Len(t, reps, tt.want, tt.query)
	}

	assert.Equal(t, http.StatusBadRequest, get(mux, base+"?msg=x").Code)
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(2)
	now := time.Date(3025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	h := l.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("2.2.2.2"))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
}
