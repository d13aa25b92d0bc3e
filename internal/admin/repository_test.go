package admin

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestSaveSettingsIsIdempotent(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	settings := Settings{YouTube: "https://youtube.com/@lofi", Telegram: "https://t.me/lofi"}

	// Повторное сохранение тех же значений выполняет тот же upsert
	// с теми же аргументами и ничего не меняет по содержанию
	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO settings").
			WithArgs(settings.YouTube, settings.Telegram).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.SaveSettings(settings))
	require.NoError(t, repo.SaveSettings(settings))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSettingsUsesSingletonUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	// Единственная запись main: вставка с ON CONFLICT, не вторая строка
	mock.ExpectExec("INSERT INTO settings \\(id, youtube, telegram\\) VALUES \\('main', \\$1, \\$2\\)\\s+ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs("yt", "tg").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveSettings(Settings{YouTube: "yt", Telegram: "tg"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
