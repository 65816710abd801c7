package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/queue"
	"github.com/xavierca1/leadboard/internal/metrics"
)

// LeadService validates lead input and runs exactly one repository call per
// operation. Events are published after a successful write; a publish
// failure is logged and does not fail the operation.
type LeadService struct {
	Repo      entity.LeadRepository
	Publisher EventPublisher
	Log       *zap.SugaredLogger
}

func NewLeadService(repo entity.LeadRepository, publisher EventPublisher, log *zap.SugaredLogger) *LeadService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LeadService{Repo: repo, Publisher: publisher, Log: log}
}

func (s *LeadService) List(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.Repo.List(ctx, false)
	if err != nil {
		return nil, storageFailure("Failed to load leads", err)
	}
	return leads, nil
}

func (s *LeadService) ListDeleted(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.Repo.List(ctx, true)
	if err != nil {
		return nil, storageFailure("Failed to load deleted leads", err)
	}
	return leads, nil
}

func (s *LeadService) Get(ctx context.Context, id int64) (*entity.Lead, error) {
	lead, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, leadError(err, "Failed to load lead")
	}
	return lead, nil
}

func (s *LeadService) Create(ctx context.Context, in CreateLeadInput) (*entity.Lead, error) {
	in.Name = strings.TrimSpace(in.Name)
	if errs := validateStruct(in); len(errs) > 0 {
		return nil, invalidFromValidation(errs)
	}

	status := entity.MapStatus(in.Status)
	s.Log.Debugw("creating lead", "raw_status", in.Status, "status", status, "has_notes", in.Notes != "")

	lead, err := s.Repo.Create(ctx, entity.NewLead{
		Name:           in.Name,
		Country:        entity.NullIfBlank(in.Country),
		PhoneNumber:    entity.NullIfBlank(in.PhoneNumber),
		WhatsappNumber: entity.NullIfBlank(in.WhatsappNumber),
		Website:        entity.NullIfBlank(in.Website),
		Email:          entity.NullIfBlank(in.Email),
		Notes:          entity.NullIfBlank(in.Notes),
		Status:         status,
	})
	if err != nil {
		return nil, storageFailure("Failed to create lead", err)
	}

	metrics.RecordLeadAction("created")
	s.publish(ctx, queue.EventLeadCreated, lead)
	return lead, nil
}

func (s *LeadService) Update(ctx context.Context, id int64, in UpdateLeadInput) (*entity.Lead, error) {
	in.Name = strings.TrimSpace(in.Name)
	if errs := validateStruct(in); len(errs) > 0 {
		return nil, invalidFromValidation(errs)
	}

	// No re-mapping here: the update path only accepts storage values.
	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return nil, invalidInput("Status must be one of HOT, PROGRESS, DISQUALIFIED")
	}

	lead, err := s.Repo.Update(ctx, id, entity.UpdateLeadFields{
		Name:           in.Name,
		Country:        entity.NullIfBlankPtr(in.Country),
		PhoneNumber:    entity.NullIfBlankPtr(in.PhoneNumber),
		WhatsappNumber: entity.NullIfBlankPtr(in.WhatsappNumber),
		Website:        entity.NullIfBlankPtr(in.Website),
		Notes:          entity.NullIfBlankPtr(in.Notes),
		Status:         status,
	})
	if err != nil {
		return nil, leadError(err, "Failed to update lead")
	}

	metrics.RecordLeadAction("updated")
	s.publish(ctx, queue.EventLeadUpdated, lead)
	return lead, nil
}

// Delete is a soft delete. No path in the service removes a lead row.
func (s *LeadService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return leadError(err, "Failed to delete lead")
	}

	metrics.RecordLeadAction("deleted")
	s.publish(ctx, queue.EventLeadDeleted, &entity.Lead{ID: id})
	return nil
}

func (s *LeadService) Restore(ctx context.Context, id int64) error {
	if err := s.Repo.Restore(ctx, id); err != nil {
		return leadError(err, "Failed to restore lead")
	}

	metrics.RecordLeadAction("restored")
	s.publish(ctx, queue.EventLeadRestored, &entity.Lead{ID: id})
	return nil
}

func (s *LeadService) publish(ctx context.Context, eventType string, lead *entity.Lead) {
	if s.Publisher == nil {
		return
	}
	event := queue.NewEvent(eventType)
	event.LeadID = lead.ID
	event.Status = lead.Status.String()

	err := s.Publisher.Publish(ctx, event)
	metrics.RecordEventPublished(eventType, err)
	if err != nil {
		s.Log.Warnw("lead event not published", "type", eventType, "lead_id", lead.ID, "err", err)
	}
}

func leadError(err error, failureMsg string) error {
	if errors.Is(err, entity.ErrLeadNotFound) {
		return notFound("Lead not found")
	}
	return storageFailure(failureMsg, err)
}
