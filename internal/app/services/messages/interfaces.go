package messages

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/dto/requests"
)

type MessageStoreClient interface {
	FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Message, error)
	InsertMessage(ctx context.Context, accessToken string, message *models.Message) (*models.Message, error)
}

type MessageUsecase interface {
	ListMessages(ctx context.Context, session *models.Session) ([]models.Message, error)
	MarkIncomingAsRead(ctx context.Context, session *models.Session) ([]models.Message, error)
	SendMessage(ctx context.Context, session *models.Session, request *requests.SendMessage) (*models.Message, error)
	CountUnread(ctx context.Context, session *models.Session) (int, error)
}
