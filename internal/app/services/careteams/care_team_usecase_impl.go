package careteams

import (
	"context"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/shared/storage"
	"openwindows-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type careTeamUsecase struct {
	CareTeamStoreClient CareTeamStoreClient
	Storage             storage.Storage
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewCareTeamUsecase(
	careTeamStoreClient CareTeamStoreClient,
	storageService storage.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) CareTeamUsecase {
	return &careTeamUsecase{
		CareTeamStoreClient: careTeamStoreClient,
		Storage:             storageService,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *careTeamUsecase) ListCareTeam(ctx context.Context, session *models.Session) ([]models.CareTeamMember, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if session.Patient == nil {
		return []models.CareTeamMember{}, nil
	}

	members, err := uc.CareTeamStoreClient.FindByPatientID(ctx, session.StoreToken, session.Patient.ID)
	if err != nil {
		return nil, err
	}

	// Photo links are best effort; a storage failure leaves the member
	// without a photo instead of failing the whole list.
	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	for i := range members {
		if members[i].PhotoObject == "" {
			continue
		}
		photoURL, urlErr := uc.Storage.GetObjectPresignedURL(ctx, uc.InternalConfig.Minio.BucketName, members[i].PhotoObject, expiry)
		if urlErr != nil {
			uc.Log.Warn("careTeamUsecase.ListCareTeam presigned photo URL failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBucketKey, uc.InternalConfig.Minio.BucketName),
				zap.Error(urlErr),
			)
			continue
		}
		members[i].PhotoURL = photoURL
	}

	uc.Log.Info("careTeamUsecase.ListCareTeam fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.Patient.ID),
		zap.Int(constvars.LoggingCountKey, len(members)),
	)
	return members, nil
}
