package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is an in-memory Store used to exercise handlers without a
// database. setID assigns the generated id on create; apply interprets a
// change map the way the gorm store would.
type fakeStore[T any] struct {
	records map[uint]*T
	nextID  uint
	setID   func(*T, uint)
	apply   func(*T, map[string]any)
}

func newFakeStore[T any](setID func(*T, uint), apply func(*T, map[string]any)) *fakeStore[T] {
	return &fakeStore[T]{
		records: map[uint]*T{},
		setID:   setID,
		apply:   apply,
	}
}

func (s *fakeStore[T]) List(_ context.Context) ([]T, error) {
	ids := make([]uint, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.records[id])
	}
	return out, nil
}

func (s *fakeStore[T]) Get(_ context.Context, id uint) (*T, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *fakeStore[T]) Create(_ context.Context, record *T) error {
	s.nextID++
	s.setID(record, s.nextID)
	copied := *record
	s.records[s.nextID] = &copied
	return nil
}

func (s *fakeStore[T]) Update(_ context.Context, id uint, changes map[string]any) (*T, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.apply(record, changes)
	copied := *record
	return &copied, nil
}

func (s *fakeStore[T]) Delete(_ context.Context, id uint) error {
	if _, ok := s.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newRecorder(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
