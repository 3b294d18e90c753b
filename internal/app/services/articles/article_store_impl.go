package articles

import (
	"context"
	"net/url"
	"sync"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/carestore"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	articleStoreClientInstance ArticleStoreClient
	onceArticleStoreClient     sync.Once
)

type articleStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewArticleStoreClient(restClient carestore.RestClient, logger *zap.Logger) ArticleStoreClient {
	onceArticleStoreClient.Do(func() {
		client := &articleStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		articleStoreClientInstance = client
	})
	return articleStoreClientInstance
}

type articleRow struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	Summary           string   `json:"summary"`
	ReadingTime       int      `json:"reading_time"`
	PublishedDate     string   `json:"published_date"`
	Content           string   `json:"content"`
	RelatedArticleIDs []string `json:"related_article_ids"`
}

func (row articleRow) toModel() models.Article {
	return models.Article{
		ID:                row.ID,
		Title:             row.Title,
		Category:          row.Category,
		Summary:           row.Summary,
		ReadingTime:       row.ReadingTime,
		PublishedDate:     row.PublishedDate,
		Content:           row.Content,
		RelatedArticleIDs: row.RelatedArticleIDs,
	}
}

func (c *articleStoreClient) FindAll(ctx context.Context, accessToken string) ([]models.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("articleStoreClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set("order", "published_date.desc")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionArticles, query)
	if err != nil {
		return nil, err
	}

	var rows []articleRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("articleStoreClient.FindAll error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionArticles, constvars.ResourceLabelArticles)
	}

	articles := make([]models.Article, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, row.toModel())
	}
	return articles, nil
}

func (c *articleStoreClient) FindByID(ctx context.Context, accessToken, articleID string) (*models.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("articleStoreClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingArticleIDKey, articleID),
	)

	query := url.Values{}
	query.Set("id", "eq."+articleID)
	query.Set("limit", "1")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionArticles, query)
	if err != nil {
		return nil, err
	}

	var rows []articleRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("articleStoreClient.FindByID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionArticles, constvars.ResourceLabelArticle)
	}

	if len(rows) == 0 {
		return nil, exceptions.ErrStoreRowNotFound(nil, constvars.CollectionArticles, constvars.ResourceLabelArticle)
	}

	article := rows[0].toModel()
	return &article, nil
}
