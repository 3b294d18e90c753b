package preferences

import (
	"context"
	"time"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type preferenceUsecase struct {
	PreferenceRepository PreferenceRepository
	Log                  *zap.Logger
}

func NewPreferenceUsecase(preferenceRepository PreferenceRepository, logger *zap.Logger) PreferenceUsecase {
	return &preferenceUsecase{
		PreferenceRepository: preferenceRepository,
		Log:                  logger,
	}
}

func defaultPreferences(identityID string) *models.Preferences {
	return &models.Preferences{
		IdentityID:         identityID,
		Theme:              constvars.ThemeLight,
		TextSize:           constvars.TextSizeNormal,
		FavoriteArticleIDs: []string{},
	}
}

func (uc *preferenceUsecase) GetPreferences(ctx context.Context, session *models.Session) (*models.Preferences, error) {
	preferences, err := uc.PreferenceRepository.FindByIdentityID(ctx, session.IdentityID)
	if err != nil {
		return nil, err
	}
	if preferences == nil {
		return defaultPreferences(session.IdentityID), nil
	}
	if preferences.FavoriteArticleIDs == nil {
		preferences.FavoriteArticleIDs = []string{}
	}
	return preferences, nil
}

func (uc *preferenceUsecase) UpdatePreferences(ctx context.Context, session *models.Session, request *requests.UpdatePreferences) (*models.Preferences, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	preferences, err := uc.GetPreferences(ctx, session)
	if err != nil {
		return nil, err
	}

	preferences.Theme = request.Theme
	preferences.TextSize = request.TextSize
	preferences.UpdatedAt = time.Now()

	if err := uc.PreferenceRepository.Upsert(ctx, preferences); err != nil {
		return nil, err
	}

	uc.Log.Info("preferenceUsecase.UpdatePreferences saved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
	)
	return preferences, nil
}

// ToggleFavoriteArticle is idempotent: favoriting an already-favorited
// article or unfavoriting an absent one leaves the list unchanged.
func (uc *preferenceUsecase) ToggleFavoriteArticle(ctx context.Context, session *models.Session, articleID string, favorited bool) (*models.Preferences, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	preferences, err := uc.GetPreferences(ctx, session)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(preferences.FavoriteArticleIDs)+1)
	found := false
	for _, id := range preferences.FavoriteArticleIDs {
		if id == articleID {
			found = true
			if !favorited {
				continue
			}
		}
		updated = append(updated, id)
	}
	if favorited && !found {
		updated = append(updated, articleID)
	}
	preferences.FavoriteArticleIDs = updated
	preferences.UpdatedAt = time.Now()

	if err := uc.PreferenceRepository.Upsert(ctx, preferences); err != nil {
		return nil, err
	}

	uc.Log.Info("preferenceUsecase.ToggleFavoriteArticle saved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
		zap.String(constvars.LoggingArticleIDKey, articleID),
	)
	return preferences, nil
}
