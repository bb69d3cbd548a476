package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/northbeam/corporate-site/internal/models"
)

// companySeed mirrors the structure of configs/company.yaml.
type companySeed struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Website string `yaml:"website"`
}

// SeedCompanyInfo populates the company_info table from a yaml file when
// the table is still empty. Admin edits afterwards take precedence; the
// seed is never re-applied over an existing row.
func (r *SettingsRepository) SeedCompanyInfo(ctx context.Context, path string) error {
	existing, err := r.GetCompanyInfo(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Debug().Str("path", path).Msg("no company seed file, skipping")
			return nil
		}
		return fmt.Errorf("read company seed: %w", err)
	}

	var seed companySeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse company seed: %w", err)
	}

	info := &models.CompanyInfo{
		Name:    seed.Name,
		Email:   seed.Email,
		Phone:   seed.Phone,
		Website: seed.Website,
	}
	if err := r.SaveCompanyInfo(ctx, info); err != nil {
		return err
	}

	r.log.Info().Str("path", path).Msg("seeded company info")
	return nil
}
