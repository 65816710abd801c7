package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/queue"
	"github.com/xavierca1/leadboard/internal/metrics"
)

// SendEmailUseCase resolves the template and records the request. Nothing
// is delivered; the email.requested event is the hand-off point for a
// future delivery worker.
type SendEmailUseCase struct {
	Templates entity.EmailTemplateRepository
	Publisher EventPublisher
	Log       *zap.SugaredLogger
}

func NewSendEmailUseCase(templates entity.EmailTemplateRepository, publisher EventPublisher, log *zap.SugaredLogger) *SendEmailUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SendEmailUseCase{Templates: templates, Publisher: publisher, Log: log}
}

func (uc *SendEmailUseCase) Execute(ctx context.Context, in SendEmailInput) error {
	in.Email = strings.TrimSpace(in.Email)
	if errs := validateStruct(in); len(errs) > 0 {
		return invalidFromValidation(errs)
	}

	t, err := uc.Templates.GetByID(ctx, in.TemplateID)
	if err != nil {
		return templateError(err, "Failed to send email")
	}

	uc.Log.Infow("send email requested", "template_id", t.ID, "template", t.Title, "to", in.Email)

	if uc.Publisher != nil {
		event := queue.NewEvent(queue.EventEmailRequested)
		event.TemplateID = t.ID
		event.Email = in.Email
		err := uc.Publisher.Publish(ctx, event)
		metrics.RecordEventPublished(event.Type, err)
		if err != nil {
			uc.Log.Warnw("email event not published", "template_id", t.ID, "err", err)
		}
	}
	return nil
}
