package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/models"
)

func testSettingsRepo(t *testing.T) *SettingsRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BrevoSettings{}, &models.CompanyInfo{}))
	return NewSettingsRepository(db, logger.Get())
}

func TestSettingsRepository_BrevoSettings_EmptyTable(t *testing.T) {
	repo := testSettingsRepo(t)

	s, err := repo.GetBrevoSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSettingsRepository_BrevoSettings_SaveAndGet(t *testing.T) {
	repo := testSettingsRepo(t)
	ctx := context.Background()

	in := &models.BrevoSettings{
		SMTPLogin:   "user@brevo.test",
		SMTPKey:     "key",
		SenderEmail: "sender@example.com",
		SenderName:  "Northbeam",
		NotifyEmail: "ops@example.com",
		IsActive:    true,
	}
	require.NoError(t, repo.SaveBrevoSettings(ctx, in))

	got, err := repo.GetBrevoSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, "user@brevo.test", got.SMTPLogin)
	assert.True(t, got.IsActive)
}

func TestSettingsRepository_BrevoSettings_UpsertKeepsSingleRow(t *testing.T) {
	repo := testSettingsRepo(t)
	ctx := context.Background()

	first := &models.BrevoSettings{SMTPKey: "key-1", SenderEmail: "a@example.com", IsActive: true}
	require.NoError(t, repo.SaveBrevoSettings(ctx, first))

	second := &models.BrevoSettings{SMTPKey: "key-2", SenderEmail: "b@example.com", IsActive: false}
	require.NoError(t, repo.SaveBrevoSettings(ctx, second))

	// the update targets the existing row
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetBrevoSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "key-2", got.SMTPKey)

	var count int64
	repo.db.Model(&models.BrevoSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsRepository_CompanyInfo_SaveAndGet(t *testing.T) {
	repo := testSettingsRepo(t)
	ctx := context.Background()

	in := &models.CompanyInfo{
		Name:    "Northbeam Solutions",
		Email:   "info@northbeam.io",
		Phone:   "+1 (555) 014-2200",
		Website: "https://northbeam.io",
	}
	require.NoError(t, repo.SaveCompanyInfo(ctx, in))

	got, err := repo.GetCompanyInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Northbeam Solutions", got.Name)
}

func TestSettingsRepository_SeedCompanyInfo(t *testing.T) {
	repo := testSettingsRepo(t)
	ctx := context.Background()

	seedPath := filepath.Join(t.TempDir(), "company.yaml")
	seed := []byte("name: Seeded Corp\nemail: seed@example.com\nphone: \"+1 555 9999\"\nwebsite: https://seeded.example.com\n")
	require.NoError(t, os.WriteFile(seedPath, seed, 0644))

	require.NoError(t, repo.SeedCompanyInfo(ctx, seedPath))

	got, err := repo.GetCompanyInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Seeded Corp", got.Name)
	assert.Equal(t, "seed@example.com", got.Email)
}

func TestSettingsRepository_SeedCompanyInfo_DoesNotOverwrite(t *testing.T) {
	repo := testSettingsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCompanyInfo(ctx, &models.CompanyInfo{Name: "Admin Edited"}))

	seedPath := filepath.Join(t.TempDir(), "company.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte("name: Seeded Corp\n"), 0644))
	require.NoError(t, repo.SeedCompanyInfo(ctx, seedPath))

	got, err := repo.GetCompanyInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Admin Edited", got.Name)
}

func TestSettingsRepository_SeedCompanyInfo_MissingFileIsFine(t *testing.T) {
	repo := testSettingsRepo(t)
	assert.NoError(t, repo.SeedCompanyInfo(context.Background(), "/does/not/exist.yaml"))
}
