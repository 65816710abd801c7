package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
)

type EmailTemplateRepository struct {
	mu        sync.Mutex
	templates map[int64]entity.EmailTemplate
	nextID    int64
	now       func() time.Time
}

func NewEmailTemplateRepository() *EmailTemplateRepository {
	return &EmailTemplateRepository{
		templates: make(map[int64]entity.EmailTemplate),
		nextID:    1,
		now:       time.Now,
	}
}

func (r *EmailTemplateRepository) List(_ context.Context) ([]entity.EmailTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.EmailTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *EmailTemplateRepository) GetByID(_ context.Context, id int64) (*entity.EmailTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[id]
	if !ok {
		return nil, entity.ErrTemplateNotFound
	}
	return &t, nil
}

func (r *EmailTemplateRepository) Create(_ context.Context, title, content string) (*entity.EmailTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	t := entity.EmailTemplate{ID: r.nextID, Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	r.nextID++
	r.templates[t.ID] = t
	return &t, nil
}

func (r *EmailTemplateRepository) Update(_ context.Context, id int64, title, content string) (*entity.EmailTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[id]
	if !ok {
		return nil, entity.ErrTemplateNotFound
	}
	t.Title = title
	t.Content = content
	t.UpdatedAt = r.now()
	r.templates[id] = t
	return &t, nil
}

func (r *EmailTemplateRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return entity.ErrTemplateNotFound
	}
	delete(r.templates, id)
	return nil
}
