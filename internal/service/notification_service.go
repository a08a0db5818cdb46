package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/events"
)

// NotificationService observes grievance lifecycle events. Delivery is
// out of scope; observers log the event stream.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventGrievanceCreated, n.handleEvent("GrievanceCreated"))
	n.dispatcher.Subscribe(events.EventGrievanceAssigned, n.handleEvent("GrievanceAssigned"))
	n.dispatcher.Subscribe(events.EventGrievanceResolved, n.handleEvent("GrievanceResolved"))
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handleEvent("CommentAdded"))
}

func (n *NotificationService) handleEvent(name string) events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		n.logger.Info(name,
			zap.String("grievance_id", event.GrievanceID),
			zap.String("actor_id", event.Actor.ID),
			zap.Any("payload", event.Payload))
		return nil
	}
}
