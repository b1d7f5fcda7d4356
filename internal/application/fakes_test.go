package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	repo "github.com/oksasatya/fitness-backend/internal/domain/repository"
)

type memUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.User
	byEmail map[string]string
	calls   int
	seq     int
	failErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]string{}}
}

func (r *memUserRepo) Create(_ context.Context, username, email, hash string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failErr != nil {
		return nil, r.failErr
	}
	if _, ok := r.byEmail[email]; ok {
		return nil, repo.ErrDuplicateEmail
	}
	r.seq++
	now := time.Now()
	u := &entity.User{ID: fmt.Sprintf("user-%d", r.seq), Username: username, Email: email, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failErr != nil {
		return nil, r.failErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failErr != nil {
		return nil, r.failErr
	}
	id, ok := r.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *memUserRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *memUserRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// racyRepo hides existing users from FindByEmail to simulate two concurrent
// signups passing the pre-check.
type racyRepo struct{ *memUserRepo }

func (r racyRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}

type recordingPublisher struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, body)
	return p.err
}

type memPlanRepo struct {
	plans     []entity.TrainingPlan
	listCalls int
	getCalls  int
	err       error
}

func (r *memPlanRepo) List(_ context.Context, level string) ([]entity.TrainingPlan, error) {
	r.listCalls++
	if r.err != nil {
		return nil, r.err
	}
	out := []entity.TrainingPlan{}
	for _, p := range r.plans {
		if level == "" || p.Level == level {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlanRepo) Get(_ context.Context, idOrSlug string) (*entity.TrainingPlan, error) {
	r.getCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.plans {
		if p.ID == idOrSlug || p.Slug == idOrSlug {
			cp := p
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memPlanRepo) Upsert(context.Context, *entity.TrainingPlan) error {
	return errors.New("read-only")
}
