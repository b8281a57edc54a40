package pgsql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// recordSQL renders the statements for one entity table. Table and column
// names come from the descriptor and are quoted with pgx.Identifier; values
// are always bound as parameters.
type recordSQL struct {
	entity  domain.EntityDescriptor
	table   string
	keyCols []string
	columns string
}

func newRecordSQL(entity domain.EntityDescriptor) recordSQL {
	q := recordSQL{
		entity: entity,
		table:  pgx.Identifier{entity.Table}.Sanitize(),
	}
	cols := []string{"id", "company_id"}
	for _, field := range entity.KeyFields {
		col := pgx.Identifier{field}.Sanitize()
		q.keyCols = append(q.keyCols, col)
		cols = append(cols, col)
	}
	cols = append(cols, "data", "created_at", "updated_at")
	q.columns = strings.Join(cols, ", ")
	return q
}

func (q recordSQL) findByKey() string {
	where := []string{"company_id = $1"}
	for i, col := range q.keyCols {
		where = append(where, fmt.Sprintf("%s = $%d", col, i+2))
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s", q.columns, q.table, strings.Join(where, " AND "))
}

// insert binds id, company_id, key values..., data, created_at, updated_at.
func (q recordSQL) insert() string {
	n := 2 + len(q.keyCols)
	placeholders := make([]string, 0, n+3)
	for i := 1; i <= n; i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i))
	}
	placeholders = append(placeholders,
		fmt.Sprintf("$%d::jsonb", n+1),
		fmt.Sprintf("$%d", n+2),
		fmt.Sprintf("$%d", n+3),
	)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		q.table, q.columns, strings.Join(placeholders, ", "), q.columns)
}

// update binds id, data patch, updated_at. The patch is merged into the
// stored document so fields the caller omitted are kept.
func (q recordSQL) update() string {
	return fmt.Sprintf("UPDATE %s SET data = data || $2::jsonb, updated_at = $3 WHERE id = $1 RETURNING %s",
		q.table, q.columns)
}

// where renders the shared company and key filters starting at parameter $1.
func (q recordSQL) where(companyID string, keyEquals map[string]string) ([]string, []any, error) {
	var (
		clauses []string
		args    []any
	)
	if companyID != "" {
		args = append(args, companyID)
		clauses = append(clauses, fmt.Sprintf("company_id = $%d", len(args)))
	}

	fields := make([]string, 0, len(keyEquals))
	for field := range keyEquals {
		if !q.entity.IsKeyField(field) {
			return nil, nil, apperrors.NewValidationFailedError(fmt.Sprintf("%s cannot be filtered by %s", q.entity.Table, field))
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		args = append(args, keyEquals[field])
		clauses = append(clauses, fmt.Sprintf("%s = $%d", pgx.Identifier{field}.Sanitize(), len(args)))
	}
	return clauses, args, nil
}

func whereClause(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func (q recordSQL) orderBy() string {
	return fmt.Sprintf(" ORDER BY %s, id", pgx.Identifier{q.entity.OrderBy}.Sanitize())
}

func (q recordSQL) list(filter domain.RecordFilter) (string, []any, error) {
	clauses, args, err := q.where(filter.CompanyID, filter.KeyEquals)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT %s FROM %s%s%s", q.columns, q.table, whereClause(clauses), q.orderBy())
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return sql, args, nil
}

func (q recordSQL) search(search domain.RecordSearch) (string, []any, error) {
	if q.entity.SearchField == "" {
		return "", nil, apperrors.NewValidationFailedError(q.entity.Table + " does not support search")
	}
	clauses, args, err := q.where(search.CompanyID, nil)
	if err != nil {
		return "", nil, err
	}
	args = append(args, "%"+escapeLike(search.Query)+"%")
	clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", pgx.Identifier{q.entity.SearchField}.Sanitize(), len(args)))

	sql := fmt.Sprintf("SELECT %s FROM %s%s%s", q.columns, q.table, whereClause(clauses), q.orderBy())
	if search.Limit > 0 {
		args = append(args, search.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return sql, args, nil
}

func (q recordSQL) count(companyID string, keyEquals map[string]string) (string, []any, error) {
	clauses, args, err := q.where(companyID, keyEquals)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", q.table, whereClause(clauses)), args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
