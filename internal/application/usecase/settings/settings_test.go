package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// fakeSettingsRepo stores at most one settings row in memory.
type fakeSettingsRepo struct {
	stored  *entity.UserSettings
	findErr error
	saveErr error
	saves   int
}

func (f *fakeSettingsRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.stored == nil || f.stored.UserID != userID {
		return nil, nil
	}
	copied := *f.stored
	return &copied, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.UserSettings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	copied := *settings
	f.stored = &copied
	return nil
}

func TestGetSettings(t *testing.T) {
	userID := uuid.New()

	t.Run("first read creates the defaults", func(t *testing.T) {
		repo := &fakeSettingsRepo{}

		output, err := NewGetSettingsUseCase(repo).Execute(context.Background(), GetSettingsInput{UserID: userID})

		require.NoError(t, err)
		assert.Equal(t, entity.LanguageIndonesian, output.Settings.Language)
		assert.Equal(t, "IDR", output.Settings.Currency)
		assert.Equal(t, entity.ThemeLight, output.Settings.Theme)
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("existing row is returned untouched", func(t *testing.T) {
		existing := entity.NewDefaultSettings(userID)
		existing.Theme = entity.ThemeDark
		repo := &fakeSettingsRepo{stored: existing}

		output, err := NewGetSettingsUseCase(repo).Execute(context.Background(), GetSettingsInput{UserID: userID})

		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, output.Settings.Theme)
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &fakeSettingsRepo{findErr: errors.New("connection refused")}

		_, err := NewGetSettingsUseCase(repo).Execute(context.Background(), GetSettingsInput{UserID: userID})

		assert.Error(t, err)
	})
}

func TestUpdateSettings(t *testing.T) {
	userID := uuid.New()

	settingsErrCode := func(t *testing.T, err error) domainerror.SettingsErrorCode {
		t.Helper()
		var settingsErr *domainerror.SettingsError
		require.True(t, errors.As(err, &settingsErr), "expected a SettingsError, got %v", err)
		return settingsErr.Code
	}

	t.Run("partial update keeps the other fields", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: entity.NewDefaultSettings(userID)}

		theme := entity.ThemeDark
		output, err := NewUpdateSettingsUseCase(repo).Execute(context.Background(), UpdateSettingsInput{
			UserID: userID,
			Theme:  &theme,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, output.Settings.Theme)
		assert.Equal(t, "IDR", output.Settings.Currency)
		assert.Equal(t, entity.LanguageIndonesian, output.Settings.Language)
	})

	t.Run("update without a row lazily creates it first", func(t *testing.T) {
		repo := &fakeSettingsRepo{}

		currency := "USD"
		output, err := NewUpdateSettingsUseCase(repo).Execute(context.Background(), UpdateSettingsInput{
			UserID:   userID,
			Currency: &currency,
		})

		require.NoError(t, err)
		assert.Equal(t, "USD", output.Settings.Currency)
		assert.Equal(t, entity.ThemeLight, output.Settings.Theme)
	})

	t.Run("unsupported currency is rejected", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: entity.NewDefaultSettings(userID)}

		currency := "EUR"
		_, err := NewUpdateSettingsUseCase(repo).Execute(context.Background(), UpdateSettingsInput{
			UserID:   userID,
			Currency: &currency,
		})

		assert.Equal(t, domainerror.ErrCodeInvalidCurrency, settingsErrCode(t, err))
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("invalid theme is rejected", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: entity.NewDefaultSettings(userID)}

		theme := entity.Theme("sepia")
		_, err := NewUpdateSettingsUseCase(repo).Execute(context.Background(), UpdateSettingsInput{
			UserID: userID,
			Theme:  &theme,
		})

		assert.Equal(t, domainerror.ErrCodeInvalidTheme, settingsErrCode(t, err))
	})
}
