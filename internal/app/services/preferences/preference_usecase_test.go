package preferences

import (
	"context"
	"testing"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePreferenceRepository struct {
	stored  map[string]*models.Preferences
	findErr error
}

func newFakePreferenceRepository() *fakePreferenceRepository {
	return &fakePreferenceRepository{stored: make(map[string]*models.Preferences)}
}

func (f *fakePreferenceRepository) FindByIdentityID(ctx context.Context, identityID string) (*models.Preferences, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	preferences, ok := f.stored[identityID]
	if !ok {
		return nil, nil
	}
	copied := *preferences
	return &copied, nil
}

func (f *fakePreferenceRepository) Upsert(ctx context.Context, preferences *models.Preferences) error {
	copied := *preferences
	f.stored[preferences.IdentityID] = &copied
	return nil
}

func preferenceTestSession() *models.Session {
	return &models.Session{SessionID: "session-1", IdentityID: fixtures.IdentityID}
}

func TestPreferenceUsecaseGetPreferences(t *testing.T) {
	t.Run("unsaved identity gets the defaults", func(t *testing.T) {
		usecase := NewPreferenceUsecase(newFakePreferenceRepository(), zap.NewNop())

		preferences, err := usecase.GetPreferences(context.Background(), preferenceTestSession())

		require.NoError(t, err)
		assert.Equal(t, constvars.ThemeLight, preferences.Theme)
		assert.Equal(t, constvars.TextSizeNormal, preferences.TextSize)
		assert.Empty(t, preferences.FavoriteArticleIDs)
	})

	t.Run("saved preferences come back as stored", func(t *testing.T) {
		repository := newFakePreferenceRepository()
		repository.stored[fixtures.IdentityID] = &models.Preferences{
			IdentityID:         fixtures.IdentityID,
			Theme:              constvars.ThemeDark,
			TextSize:           constvars.TextSizeLarge,
			FavoriteArticleIDs: []string{"art-001"},
		}
		usecase := NewPreferenceUsecase(repository, zap.NewNop())

		preferences, err := usecase.GetPreferences(context.Background(), preferenceTestSession())

		require.NoError(t, err)
		assert.Equal(t, constvars.ThemeDark, preferences.Theme)
		assert.Equal(t, []string{"art-001"}, preferences.FavoriteArticleIDs)
	})

	t.Run("missing favorites list is normalized to empty", func(t *testing.T) {
		repository := newFakePreferenceRepository()
		repository.stored[fixtures.IdentityID] = &models.Preferences{
			IdentityID: fixtures.IdentityID,
			Theme:      constvars.ThemeDark,
			TextSize:   constvars.TextSizeNormal,
		}
		usecase := NewPreferenceUsecase(repository, zap.NewNop())

		preferences, err := usecase.GetPreferences(context.Background(), preferenceTestSession())

		require.NoError(t, err)
		assert.NotNil(t, preferences.FavoriteArticleIDs)
		assert.Empty(t, preferences.FavoriteArticleIDs)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repository := newFakePreferenceRepository()
		repository.findErr = exceptions.ErrMongoDBFindDocument(nil)
		usecase := NewPreferenceUsecase(repository, zap.NewNop())

		_, err := usecase.GetPreferences(context.Background(), preferenceTestSession())
		assert.Error(t, err)
	})
}

func TestPreferenceUsecaseUpdatePreferences(t *testing.T) {
	repository := newFakePreferenceRepository()
	usecase := NewPreferenceUsecase(repository, zap.NewNop())

	preferences, err := usecase.UpdatePreferences(context.Background(), preferenceTestSession(), &requests.UpdatePreferences{
		Theme:    constvars.ThemeDark,
		TextSize: constvars.TextSizeXLarge,
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.ThemeDark, preferences.Theme)
	assert.Equal(t, constvars.TextSizeXLarge, preferences.TextSize)
	assert.False(t, preferences.UpdatedAt.IsZero())

	stored := repository.stored[fixtures.IdentityID]
	require.NotNil(t, stored)
	assert.Equal(t, constvars.ThemeDark, stored.Theme)
}

func TestPreferenceUsecaseToggleFavoriteArticle(t *testing.T) {
	t.Run("favoriting adds the article once", func(t *testing.T) {
		usecase := NewPreferenceUsecase(newFakePreferenceRepository(), zap.NewNop())
		session := preferenceTestSession()

		preferences, err := usecase.ToggleFavoriteArticle(context.Background(), session, "art-001", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"art-001"}, preferences.FavoriteArticleIDs)

		preferences, err = usecase.ToggleFavoriteArticle(context.Background(), session, "art-001", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"art-001"}, preferences.FavoriteArticleIDs)
	})

	t.Run("unfavoriting removes the article and is idempotent", func(t *testing.T) {
		repository := newFakePreferenceRepository()
		repository.stored[fixtures.IdentityID] = &models.Preferences{
			IdentityID:         fixtures.IdentityID,
			Theme:              constvars.ThemeLight,
			TextSize:           constvars.TextSizeNormal,
			FavoriteArticleIDs: []string{"art-001", "art-002"},
		}
		usecase := NewPreferenceUsecase(repository, zap.NewNop())
		session := preferenceTestSession()

		preferences, err := usecase.ToggleFavoriteArticle(context.Background(), session, "art-001", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"art-002"}, preferences.FavoriteArticleIDs)

		preferences, err = usecase.ToggleFavoriteArticle(context.Background(), session, "art-001", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"art-002"}, preferences.FavoriteArticleIDs)
	})

	t.Run("order of remaining favorites is preserved", func(t *testing.T) {
		repository := newFakePreferenceRepository()
		repository.stored[fixtures.IdentityID] = &models.Preferences{
			IdentityID:         fixtures.IdentityID,
			Theme:              constvars.ThemeLight,
			TextSize:           constvars.TextSizeNormal,
			FavoriteArticleIDs: []string{"art-001", "art-002", "art-003"},
		}
		usecase := NewPreferenceUsecase(repository, zap.NewNop())

		preferences, err := usecase.ToggleFavoriteArticle(context.Background(), preferenceTestSession(), "art-002", false)

		require.NoError(t, err)
		assert.Equal(t, []string{"art-001", "art-003"}, preferences.FavoriteArticleIDs)
	})
}
