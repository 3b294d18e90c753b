package messages

import (
	"context"
	"fmt"
	"sort"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/shared/messagequeue"
	"openwindows-service/internal/app/services/shared/redis"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const readWatermarkKeyPrefix = "message_read_watermark:"

type messageUsecase struct {
	MessageStoreClient MessageStoreClient
	RedisRepository    redis.RedisRepository
	QueuePublisher     messagequeue.QueuePublisher
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewMessageUsecase(
	messageStoreClient MessageStoreClient,
	redisRepository redis.RedisRepository,
	queuePublisher messagequeue.QueuePublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) MessageUsecase {
	return &messageUsecase{
		MessageStoreClient: messageStoreClient,
		RedisRepository:    redisRepository,
		QueuePublisher:     queuePublisher,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *messageUsecase) ListMessages(ctx context.Context, session *models.Session) ([]models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if session.Patient == nil {
		return []models.Message{}, nil
	}

	messageList, err := uc.MessageStoreClient.FindByPatientID(ctx, session.StoreToken, session.Patient.ID)
	if err != nil {
		return nil, err
	}

	// The thread is oldest-first regardless of how the store returns rows;
	// the ordered query is an optimization, not the guarantee.
	sort.SliceStable(messageList, func(i, j int) bool {
		return messageList[i].SentAt.Before(messageList[j].SentAt)
	})

	watermark, err := uc.getReadWatermark(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	applyReadWatermark(messageList, watermark)

	uc.Log.Info("messageUsecase.ListMessages fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.Patient.ID),
		zap.Int(constvars.LoggingCountKey, len(messageList)),
	)
	return messageList, nil
}

// MarkIncomingAsRead advances this session's read watermark to now. Marking
// is session-local and never written back to the care store. The watermark
// only moves when something is still unread, so calling it again with no new
// incoming messages leaves the earlier read stamps exactly as they were.
func (uc *messageUsecase) MarkIncomingAsRead(ctx context.Context, session *models.Session) ([]models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if session.Patient == nil {
		return []models.Message{}, nil
	}

	messageList, err := uc.ListMessages(ctx, session)
	if err != nil {
		return nil, err
	}

	hasUnread := false
	for i := range messageList {
		if !messageList[i].IsFromPatient && messageList[i].ReadAt == nil {
			hasUnread = true
			break
		}
	}
	if !hasUnread {
		return messageList, nil
	}

	watermark := time.Now()
	exp := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	err = uc.RedisRepository.Set(ctx, readWatermarkKey(session.SessionID), watermark.Format(time.RFC3339Nano), exp)
	if err != nil {
		return nil, err
	}
	applyReadWatermark(messageList, watermark)

	uc.Log.Info("messageUsecase.MarkIncomingAsRead watermark advanced",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return messageList, nil
}

func (uc *messageUsecase) SendMessage(ctx context.Context, session *models.Session, request *requests.SendMessage) (*models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if request.Text == "" {
		return nil, exceptions.ErrEmptyMessageText()
	}
	if session.Patient == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, "no patient profile linked to the signed-in identity")
	}

	senderName := session.Patient.FullName()
	if senderName == "" {
		senderName = constvars.FallbackSenderName
	}

	message := &models.Message{
		PatientID:     session.Patient.ID,
		SenderName:    senderName,
		IsFromPatient: true,
		Text:          request.Text,
	}

	inserted, err := uc.MessageStoreClient.InsertMessage(ctx, session.StoreToken, message)
	if err != nil {
		return nil, err
	}

	// Queue notification is best effort; the message is already stored.
	notification := map[string]interface{}{
		"message_id": inserted.ID,
		"patient_id": inserted.PatientID,
		"sent_at":    inserted.SentAt,
	}
	queueName := uc.InternalConfig.RabbitMQ.MessageSentQueue
	if publishErr := uc.QueuePublisher.Publish(ctx, queueName, notification); publishErr != nil {
		uc.Log.Warn("messageUsecase.SendMessage queue notification failed, message already stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, queueName),
			zap.Error(publishErr),
		)
	}

	uc.Log.Info("messageUsecase.SendMessage message stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, inserted.ID),
		zap.String(constvars.LoggingPatientIDKey, inserted.PatientID),
	)
	return inserted, nil
}

func (uc *messageUsecase) CountUnread(ctx context.Context, session *models.Session) (int, error) {
	messageList, err := uc.ListMessages(ctx, session)
	if err != nil {
		return 0, err
	}

	unread := 0
	for i := range messageList {
		if !messageList[i].IsFromPatient && messageList[i].ReadAt == nil {
			unread++
		}
	}
	return unread, nil
}

func (uc *messageUsecase) getReadWatermark(ctx context.Context, sessionID string) (time.Time, error) {
	raw, err := uc.RedisRepository.Get(ctx, readWatermarkKey(sessionID))
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return time.Time{}, nil
	}

	// The value round-trips through JSON marshaling so it arrives quoted.
	var stamp string
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		stamp = raw[1 : len(raw)-1]
	} else {
		stamp = raw
	}

	watermark, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return time.Time{}, nil
	}
	return watermark, nil
}

// applyReadWatermark stamps incoming messages sent at or before the watermark
// as read. Outgoing messages and rows the store already marked are untouched.
func applyReadWatermark(messageList []models.Message, watermark time.Time) {
	if watermark.IsZero() {
		return
	}
	for i := range messageList {
		if messageList[i].IsFromPatient || messageList[i].ReadAt != nil {
			continue
		}
		if !messageList[i].SentAt.After(watermark) {
			readAt := watermark
			messageList[i].ReadAt = &readAt
		}
	}
}

func readWatermarkKey(sessionID string) string {
	return fmt.Sprintf("%s%s", readWatermarkKeyPrefix, sessionID)
}
