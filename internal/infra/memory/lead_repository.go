// Package memory holds process-local repository backends. They are meant
// for tests and local prototyping; data is lost when the process exits.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
)

type LeadRepository struct {
	mu     sync.Mutex
	leads  map[int64]entity.Lead
	order  []int64 // insertion order
	nextID int64
	now    func() time.Time
}

func NewLeadRepository() *LeadRepository {
	return NewLeadRepositoryWithClock(time.Now)
}

// NewLeadRepositoryWithClock lets tests control createdAt/updatedAt.
func NewLeadRepositoryWithClock(now func() time.Time) *LeadRepository {
	return &LeadRepository{
		leads:  make(map[int64]entity.Lead),
		nextID: 1,
		now:    now,
	}
}

func (r *LeadRepository) List(_ context.Context, includeDeleted bool) ([]entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Lead, 0, len(r.order))
	for _, id := range r.order {
		if l := r.leads[id]; l.Deleted == includeDeleted {
			out = append(out, copyLead(l))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if includeDeleted {
			a, b = out[i].UpdatedAt, out[j].UpdatedAt
		}
		if a.Equal(b) {
			return out[i].ID > out[j].ID
		}
		return a.After(b)
	})
	return out, nil
}

func (r *LeadRepository) GetByID(_ context.Context, id int64) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	out := copyLead(l)
	return &out, nil
}

func (r *LeadRepository) Create(_ context.Context, in entity.NewLead) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	l := entity.Lead{
		ID:             r.nextID,
		Name:           in.Name,
		Country:        clone(in.Country),
		PhoneNumber:    clone(in.PhoneNumber),
		WhatsappNumber: clone(in.WhatsappNumber),
		Website:        clone(in.Website),
		Email:          clone(in.Email),
		Notes:          clone(in.Notes),
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.nextID++
	r.leads[l.ID] = l
	r.order = append(r.order, l.ID)

	out := copyLead(l)
	return &out, nil
}

func (r *LeadRepository) Update(_ context.Context, id int64, f entity.UpdateLeadFields) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	l.Name = f.Name
	l.Country = clone(f.Country)
	l.Status = f.Status
	l.PhoneNumber = clone(f.PhoneNumber)
	l.WhatsappNumber = clone(f.WhatsappNumber)
	l.Website = clone(f.Website)
	l.Notes = clone(f.Notes)
	l.UpdatedAt = r.touch(l)
	r.leads[id] = l

	out := copyLead(l)
	return &out, nil
}

func (r *LeadRepository) SoftDelete(_ context.Context, id int64) error {
	return r.setDeleted(id, true)
}

func (r *LeadRepository) Restore(_ context.Context, id int64) error {
	return r.setDeleted(id, false)
}

func (r *LeadRepository) setDeleted(id int64, deleted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leads[id]
	if !ok {
		return entity.ErrLeadNotFound
	}
	l.Deleted = deleted
	l.UpdatedAt = r.touch(l)
	r.leads[id] = l
	return nil
}

func (r *LeadRepository) Stats(_ context.Context) (entity.LeadStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := entity.LeadStats{ActiveByStatus: make(map[entity.LeadStatus]int, len(entity.StorageStatuses))}
	for _, s := range entity.StorageStatuses {
		stats.ActiveByStatus[s] = 0
	}
	for _, l := range r.leads {
		if l.Deleted {
			stats.Deleted++
			continue
		}
		stats.ActiveByStatus[l.Status]++
	}
	return stats, nil
}

// touch returns the new updatedAt, never earlier than createdAt even if the
// clock goes backwards.
func (r *LeadRepository) touch(l entity.Lead) time.Time {
	now := r.now()
	if now.Before(l.CreatedAt) {
		return l.CreatedAt
	}
	return now
}

func copyLead(l entity.Lead) entity.Lead {
	l.Country = clone(l.Country)
	l.PhoneNumber = clone(l.PhoneNumber)
	l.WhatsappNumber = clone(l.WhatsappNumber)
	l.Website = clone(l.Website)
	l.Email = clone(l.Email)
	l.Notes = clone(l.Notes)
	return l
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
