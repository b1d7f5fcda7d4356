package search

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
)

type fakeES struct {
	mu     sync.Mutex
	paths  []string
	bodies []string
}

func (f *fakeES) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.bodies = append(f.bodies, string(body))
		f.mu.Unlock()

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/_bulk"):
			_, _ = io.WriteString(w, `{"took":1,"errors":false,"items":[]}`)
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = io.WriteString(w, `{"hits":{"hits":[{"_id":"0001","_source":{"id":"0001","name":"3/4 sit-up","bodyPart":"waist","equipment":"body weight","target":"abs"}}]}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{}`)
		}
	}
}

func newTestIndex(t *testing.T) (*ExerciseIndex, *fakeES) {
	t.Helper()
	fake := &fakeES{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewExerciseIndex(es, "exercises"), fake
}

func TestExerciseIndex_IndexAll(t *testing.T) {
	idx, fake := newTestIndex(t)

	err := idx.IndexAll(context.Background(), []entity.Exercise{
		{ID: "0001", Name: "3/4 sit-up", BodyPart: "waist"},
		{ID: "0002", Name: "45 side bend", BodyPart: "waist"},
	})
	require.NoError(t, err)

	require.Len(t, fake.paths, 1)
	assert.Equal(t, "/exercises/_bulk", fake.paths[0])

	lines := 0
	sc := bufio.NewScanner(strings.NewReader(fake.bodies[0]))
	for sc.Scan() {
		lines++
	}
	assert.Equal(t, 4, lines)
	assert.Contains(t, fake.bodies[0], `"_id":"0002"`)
}

func TestExerciseIndex_IndexAll_EmptyIsNoop(t *testing.T) {
	idx, fake := newTestIndex(t)

	require.NoError(t, idx.IndexAll(context.Background(), nil))
	assert.Empty(t, fake.paths)
}

func TestExerciseIndex_Search(t *testing.T) {
	idx, fake := newTestIndex(t)

	got, err := idx.Search(context.Background(), "situp", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0001", got[0].ID)
	assert.Equal(t, "/exercises/_search", fake.paths[0])
	assert.Contains(t, fake.bodies[0], `"multi_match"`)
}
