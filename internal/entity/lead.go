package entity

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrLeadNotFound = errors.New("lead not found")

type Lead struct {
	ID             int64      `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Country        *string    `json:"country" db:"country"`
	PhoneNumber    *string    `json:"phoneNumber" db:"phoneNumber"`
	WhatsappNumber *string    `json:"whatsappNumber" db:"whatsappNumber"`
	Website        *string    `json:"website" db:"website"`
	Email          *string    `json:"email" db:"email"`
	Notes          *string    `json:"notes" db:"notes"`
	Status         LeadStatus `json:"status" db:"status"`
	Deleted        bool       `json:"deleted" db:"deleted"`
	CreatedAt      time.Time  `json:"createdAt" db:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updatedAt"`
}

// NewLead carries the fields of a lead about to be inserted. Status is
// already folded into a storage value.
type NewLead struct {
	Name           string
	Country        *string
	PhoneNumber    *string
	WhatsappNumber *string
	Website        *string
	Email          *string
	Notes          *string
	Status         LeadStatus
}

// UpdateLeadFields is a full-field overwrite. Status is not re-mapped on
// this path: callers must hand over a storage value (see ParseStatus).
type UpdateLeadFields struct {
	Name           string
	Country        *string
	PhoneNumber    *string
	WhatsappNumber *string
	Website        *string
	Notes          *string
	Status         LeadStatus
}

// LeadStats is a snapshot of the table used by the gauge worker.
type LeadStats struct {
	ActiveByStatus map[LeadStatus]int
	Deleted        int
}

type LeadRepository interface {
	List(ctx context.Context, includeDeleted bool) ([]Lead, error)
	GetByID(ctx context.Context, id int64) (*Lead, error)
	Create(ctx context.Context, lead NewLead) (*Lead, error)
	Update(ctx context.Context, id int64, fields UpdateLeadFields) (*Lead, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Stats(ctx context.Context) (LeadStats, error)
}

// NullIfBlank turns an empty or whitespace-only value into nil.
func NullIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// NullIfBlankPtr is NullIfBlank for values that may already be absent.
func NullIfBlankPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return NullIfBlank(*s)
}
