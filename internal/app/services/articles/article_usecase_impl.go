package articles

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/preferences"
	"openwindows-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type articleUsecase struct {
	ArticleStoreClient ArticleStoreClient
	PreferenceUsecase  preferences.PreferenceUsecase
	Log                *zap.Logger
}

func NewArticleUsecase(
	articleStoreClient ArticleStoreClient,
	preferenceUsecase preferences.PreferenceUsecase,
	logger *zap.Logger,
) ArticleUsecase {
	return &articleUsecase{
		ArticleStoreClient: articleStoreClient,
		PreferenceUsecase:  preferenceUsecase,
		Log:                logger,
	}
}

func (uc *articleUsecase) ListArticles(ctx context.Context, session *models.Session) ([]models.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	articles, err := uc.ArticleStoreClient.FindAll(ctx, session.StoreToken)
	if err != nil {
		return nil, err
	}

	favorites := uc.favoriteSet(ctx, session, requestID)
	for i := range articles {
		articles[i].IsFavorited = favorites[articles[i].ID]
	}

	uc.Log.Info("articleUsecase.ListArticles fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(articles)),
	)
	return articles, nil
}

func (uc *articleUsecase) GetArticleByID(ctx context.Context, session *models.Session, articleID string) (*models.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	article, err := uc.ArticleStoreClient.FindByID(ctx, session.StoreToken, articleID)
	if err != nil {
		return nil, err
	}

	article.Blocks = ParseContentBlocks(article.Content)
	article.IsFavorited = uc.favoriteSet(ctx, session, requestID)[article.ID]

	uc.Log.Info("articleUsecase.GetArticleByID fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingArticleIDKey, articleID),
		zap.Int(constvars.LoggingCountKey, len(article.Blocks)),
	)
	return article, nil
}

// favoriteSet is best effort: if stored preferences cannot be read, articles
// render unfavorited rather than failing the fetch.
func (uc *articleUsecase) favoriteSet(ctx context.Context, session *models.Session, requestID string) map[string]bool {
	favorites := make(map[string]bool)
	storedPreferences, err := uc.PreferenceUsecase.GetPreferences(ctx, session)
	if err != nil {
		uc.Log.Warn("articleUsecase.favoriteSet preferences unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return favorites
	}
	for _, id := range storedPreferences.FavoriteArticleIDs {
		favorites[id] = true
	}
	return favorites
}
