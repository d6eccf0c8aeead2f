package services

import (
	"context"

	"peerlink/contract"
	"peerlink/domain"
)

// IBrokerService is the surface transports program against: one call
// per inbound event, all synchronous, none returning transport errors.
type IBrokerService interface {
	SessionOpened(ctx context.Context, sessionID string, sink contract.EventSink) *domain.Identity
	SessionClosed(ctx context.Context, sessionID string)
	RequestConnection(ctx context.Context, sessionID, targetID string)
	AcceptConnection(ctx context.Context, sessionID, initiatorID string)
	DeclineConnection(ctx context.Context, sessionID, initiatorID string)
	SendMessage(ctx context.Context, sessionID string, cmd domain.SendMessageCommand)
	Typing(ctx context.Context, sessionID, targetID string, isTyping bool)
	Disconnect(ctx context.Context, sessionID, targetID string)
}

type BrokerService struct {
	router contract.IBroker
}

func NewBrokerService(router contract.IBroker) *BrokerService {
	return &BrokerService{router: router}
}

func (s *BrokerService) SessionOpened(ctx context.Context, sessionID string, sink contract.EventSink) *domain.Identity {
	return s.router.SessionOpened(ctx, sessionID, sink)
}

func (s *BrokerService) SessionClosed(ctx context.Context, sessionID string) {
	s.router.SessionClosed(ctx, sessionID)
}

func (s *BrokerService) RequestConnection(ctx context.Context, sessionID, targetID string) {
	s.router.RequestConnection(ctx, sessionID, targetID)
}

func (s *BrokerService) AcceptConnection(ctx context.Context, sessionID, initiatorID string) {
	s.router.AcceptConnection(ctx, sessionID, initiatorID)
}

func (s *BrokerService) DeclineConnection(ctx context.Context, sessionID, initiatorID string) {
	s.router.DeclineConnection(ctx, sessionID, initiatorID)
}

func (s *BrokerService) SendMessage(ctx context.Context, sessionID string, cmd domain.SendMessageCommand) {
	s.router.SendMessage(ctx, sessionID, cmd)
}

func (s *BrokerService) Typing(ctx context.Context, sessionID, targetID string, isTyping bool) {
	s.router.Typing(ctx, sessionID, targetID, isTyping)
}

func (s *BrokerService) Disconnect(ctx context.Context, sessionID, targetID string) {
	s.router.Disconnect(ctx, sessionID, targetID)
}
