package pgsql

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	"github.com/SscSPs/tally_cloud_sync/internal/models"
	"github.com/SscSPs/tally_cloud_sync/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelectQuery = `SELECT id, name, created_at FROM companies `

func (r *PgxCompanyRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()

	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect company rows", err)
	}
	return mapping.ToDomainCompanySlice(companies), nil
}

func (r *PgxCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	companies, err := r.getCompanies(ctx, `WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &companies[0], nil
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.getCompanies(ctx, `ORDER BY name`)
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	m := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (id, name, created_at)
		VALUES ($1, $2, COALESCE($3, NOW()))
		RETURNING id, name, created_at;
	`
	var createdAt any
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt
	}

	var saved models.Company
	err := r.Pool.QueryRow(ctx, query, m.ID, m.Name, createdAt).Scan(&saved.ID, &saved.Name, &saved.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "company "+company.Name)
	}
	out := mapping.ToDomainCompany(saved)
	return &out, nil
}
