package articles

import (
	"context"

	"openwindows-service/internal/app/models"
)

type ArticleStoreClient interface {
	FindAll(ctx context.Context, accessToken string) ([]models.Article, error)
	FindByID(ctx context.Context, accessToken, articleID string) (*models.Article, error)
}

type ArticleUsecase interface {
	ListArticles(ctx context.Context, session *models.Session) ([]models.Article, error)
	GetArticleByID(ctx context.Context, session *models.Session, articleID string) (*models.Article, error)
}
