package preferences

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/dto/requests"
)

// PreferenceRepository persists display preferences per identity. FindByIdentityID
// returns nil when the identity has never saved preferences.
type PreferenceRepository interface {
	FindByIdentityID(ctx context.Context, identityID string) (*models.Preferences, error)
	Upsert(ctx context.Context, preferences *models.Preferences) error
}

type PreferenceUsecase interface {
	GetPreferences(ctx context.Context, session *models.Session) (*models.Preferences, error)
	UpdatePreferences(ctx context.Context, session *models.Session, request *requests.UpdatePreferences) (*models.Preferences, error)
	ToggleFavoriteArticle(ctx context.Context, session *models.Session, articleID string, favorited bool) (*models.Preferences, error)
}
