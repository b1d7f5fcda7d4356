package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
)

const (
	DefaultExercisePage  = 1
	DefaultExerciseLimit = 100
	MaxExerciseLimit     = 1000
	DefaultSearchLimit   = 20
	MaxSearchLimit       = 100
)

// ExerciseSearcher is satisfied by *search.ExerciseIndex.
type ExerciseSearcher interface {
	Search(ctx context.Context, q string, size int) ([]entity.Exercise, error)
}

// ExerciseService serves the exercise catalog. The catalog is loaded once at
// startup and never mutated, so it is read without locking.
type ExerciseService struct {
	exercises []entity.Exercise
	byID      map[string]int
	bodyParts []string
	Searcher  ExerciseSearcher // optional
	Logger    *logrus.Logger
}

func NewExerciseService(exercises []entity.Exercise, searcher ExerciseSearcher, logger *logrus.Logger) *ExerciseService {
	if exercises == nil {
		exercises = []entity.Exercise{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &ExerciseService{
		exercises: exercises,
		byID:      make(map[string]int, len(exercises)),
		bodyParts: []string{},
		Searcher:  searcher,
		Logger:    logger,
	}
	seen := make(map[string]struct{})
	for i, e := range exercises {
		if _, dup := s.byID[e.ID]; !dup {
			s.byID[e.ID] = i
		}
		if _, ok := seen[e.BodyPart]; !ok {
			seen[e.BodyPart] = struct{}{}
			s.bodyParts = append(s.bodyParts, e.BodyPart)
		}
	}
	return s
}

// List returns one page of the catalog. Pages are 1-based; pages past the end are empty.
func (s *ExerciseService) List(page, limit int) []entity.Exercise {
	if page < 1 {
		page = DefaultExercisePage
	}
	if limit < 1 {
		limit = DefaultExerciseLimit
	}
	if limit > MaxExerciseLimit {
		limit = MaxExerciseLimit
	}
	// compare before multiplying so huge pages cannot wrap around to page 1
	if page-1 >= (len(s.exercises)+limit-1)/limit {
		return []entity.Exercise{}
	}
	start := (page - 1) * limit
	end := min(start+limit, len(s.exercises))
	return s.exercises[start:end]
}

// BodyParts returns the distinct body parts in order of first appearance.
func (s *ExerciseService) BodyParts() []string {
	return s.bodyParts
}

// ByBodyPart matches body parts case-insensitively.
func (s *ExerciseService) ByBodyPart(part string) []entity.Exercise {
	out := make([]entity.Exercise, 0)
	for _, e := range s.exercises {
		if strings.EqualFold(e.BodyPart, part) {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExerciseService) Get(id string) (*entity.Exercise, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	e := s.exercises[i]
	return &e, nil
}

// Search uses the search index when available and falls back to a
// case-insensitive substring match on name and target.
func (s *ExerciseService) Search(ctx context.Context, q string, limit int) ([]entity.Exercise, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrValidation
	}
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	if s.Searcher != nil {
		res, err := s.Searcher.Search(ctx, q, limit)
		if err == nil {
			return res, nil
		}
		s.Logger.WithError(err).Warn("exercise search index failed, using in-memory match")
	}

	needle := strings.ToLower(q)
	out := make([]entity.Exercise, 0)
	for _, e := range s.exercises {
		if strings.Contains(strings.ToLower(e.Name), needle) || strings.Contains(strings.ToLower(e.Target), needle) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
