package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
)

// ExerciseIndex keeps the exercise catalog searchable in Elasticsearch.
type ExerciseIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewExerciseIndex(es *elasticsearch.Client, index string) *ExerciseIndex {
	return &ExerciseIndex{ES: es, Index: index}
}

// IndexAll bulk-indexes the catalog, using the exercise id as document id.
func (x *ExerciseIndex) IndexAll(ctx context.Context, exercises []entity.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range exercises {
		meta := map[string]any{"index": map[string]any{"_id": e.ID}}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(e); err != nil {
			return err
		}
	}

	c, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	res, err := x.ES.Bulk(bytes.NewReader(buf.Bytes()),
		x.ES.Bulk.WithContext(c),
		x.ES.Bulk.WithIndex(x.Index),
		x.ES.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("bulk index: %s", res.Status())
	}

	var parsed struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return err
	}
	if parsed.Errors {
		return fmt.Errorf("bulk index: some documents were rejected")
	}
	return nil
}

// Search runs a multi_match over name, target, body part and equipment.
func (x *ExerciseIndex) Search(ctx context.Context, q string, size int) ([]entity.Exercise, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^3", "target^2", "bodyPart", "equipment", "secondaryMuscles"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Exercise `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Exercise, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
