package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"peerlink/domain"
	"peerlink/mocks"
)

func TestBrokerService_Delegates_Every_Call(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routerMock := mocks.NewMockIBroker(ctrl)
	service := NewBrokerService(routerMock)

	ctx := context.Background()
	sessionID := uuid.NewString()
	sink := mocks.NewMockEventSink(ctrl)
	identity := &domain.Identity{ID: "AB12CD", SessionID: sessionID, CreatedAt: time.Now().UTC()}
	cmd := domain.SendMessageCommand{TargetID: "EF34GH", Kind: domain.KindText, Text: "hello"}

	routerMock.EXPECT().SessionOpened(ctx, sessionID, sink).Return(identity).Times(1)
	routerMock.EXPECT().RequestConnection(ctx, sessionID, "EF34GH").Times(1)
	routerMock.EXPECT().AcceptConnection(ctx, sessionID, "EF34GH").Times(1)
	routerMock.EXPECT().DeclineConnection(ctx, sessionID, "EF34GH").Times(1)
	routerMock.EXPECT().SendMessage(ctx, sessionID, cmd).Times(1)
	routerMock.EXPECT().Typing(ctx, sessionID, "EF34GH", true).Times(1)
	routerMock.EXPECT().Disconnect(ctx, sessionID, "EF34GH").Times(1)
	routerMock.EXPECT().SessionClosed(ctx, sessionID).Times(1)

	req.Equal(identity, service.SessionOpened(ctx, sessionID, sink))
	service.RequestConnection(ctx, sessionID, "EF34GH")
	service.AcceptConnection(ctx, sessionID, "EF34GH")
	service.DeclineConnection(ctx, sessionID, "EF34GH")
	service.SendMessage(ctx, sessionID, cmd)
	service.Typing(ctx, sessionID, "EF34GH", true)
	service.Disconnect(ctx, sessionID, "EF34GH")
	service.SessionClosed(ctx, sessionID)
}
