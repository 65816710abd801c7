package entity

import (
	"errors"
	"fmt"
)

// LeadStatus is the enumeration persisted in storage ("LeadStatus" enum in
// Postgres). The UI offers a richer set of labels that MapStatus folds into
// these three values.
type LeadStatus string

const (
	StatusHot          LeadStatus = "HOT"
	StatusProgress     LeadStatus = "PROGRESS"
	StatusDisqualified LeadStatus = "DISQUALIFIED"
)

var ErrInvalidStatus = errors.New("invalid lead status")

// StorageStatuses lists every value the status column may hold.
var StorageStatuses = []LeadStatus{StatusHot, StatusProgress, StatusDisqualified}

// MapStatus translates a UI status label into a storage value. It never
// fails: unknown or empty labels fall back to HOT.
func MapStatus(raw string) LeadStatus {
	switch raw {
	case "HOT":
		return StatusHot
	case "PROGRESS", "WARM":
		return StatusProgress
	case "COLD", "COMPLETED", "DISQUALIFIED":
		return StatusDisqualified
	default:
		return StatusHot
	}
}

// ParseStatus accepts only storage values. Used on the update path, where
// the caller is expected to send an already normalized status.
func ParseStatus(raw string) (LeadStatus, error) {
	s := LeadStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusHot, StatusProgress, StatusDisqualified:
		return true
	}
	return false
}

func (s LeadStatus) String() string { return string(s) }
