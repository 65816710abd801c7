package usecase

import (
	"context"

	"github.com/xavierca1/leadboard/internal/infra/queue"
)

type EventPublisher interface {
	Publish(ctx context.Context, event queue.Event) error
}
