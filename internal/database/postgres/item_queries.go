package postgres

import (
	"fmt"
	"strings"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
)

var itemColumnList = strings.Join(domain.ItemColumns, ", ")

var (
	queryInsertItem = fmt.Sprintf(`INSERT INTO %s
		(name, description, level, type, category, rarity_value, weight, value, durability, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, tableMagicItems, itemColumnList)

	querySelectItems = fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, itemColumnList, tableMagicItems)

	querySelectItemByID = fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, itemColumnList, tableMagicItems)

	queryIncreaseStock = fmt.Sprintf(`UPDATE %s SET stock = stock + $1 WHERE id = $2 RETURNING %s`,
		tableMagicItems, itemColumnList)

	queryDecreaseStock = fmt.Sprintf(`UPDATE %s SET stock = stock - $1 WHERE id = $2 RETURNING %s`,
		tableMagicItems, itemColumnList)

	queryDeleteItem = fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING %s`, tableMagicItems, itemColumnList)
)

// buildUpdateQuery turns allow-listed assignments into a single UPDATE.
// Column names come only from domain.UpdatableColumns; values are always bound.
func buildUpdateQuery(id int, fields domain.ItemFields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		if !domain.UpdatableColumns[f.Column] {
			return "", nil, fmt.Errorf("%w: column %q cannot be updated", domain.ErrInvalidInput, f.Column)
		}
		if seen[f.Column] {
			return "", nil, fmt.Errorf("%w: column %q assigned twice", domain.ErrInvalidInput, f.Column)
		}
		seen[f.Column] = true

		args = append(args, f.Value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		tableMagicItems, strings.Join(assignments, ", "), len(args), itemColumnList)

	return query, args, nil
}

// searchBuilder accumulates AND-combined predicates with numbered placeholders.
type searchBuilder struct {
	clauses []string
	args    []any
}

func (b *searchBuilder) add(predicate string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf(predicate, len(b.args)))
}

func (b *searchBuilder) equals(column string, value *string) {
	if value != nil {
		b.add(column+" = $%d", *value)
	}
}

func (b *searchBuilder) between(column string, min, max *int) {
	if min != nil {
		b.add(column+" >= $%d", *min)
	}
	if max != nil {
		b.add(column+" <= $%d", *max)
	}
}

// buildSearchQuery renders criteria as one SELECT. No criteria selects every row.
func buildSearchQuery(criteria domain.SearchCriteria) (string, []any) {
	var b searchBuilder

	b.equals(domain.ColumnName, criteria.Name)
	b.equals(domain.ColumnCategory, criteria.Category)
	b.equals(domain.ColumnType, criteria.Type)
	b.between(domain.ColumnLevel, criteria.MinLevel, criteria.MaxLevel)
	b.between(domain.ColumnValue, criteria.MinValue, criteria.MaxValue)
	b.between(domain.ColumnStock, criteria.MinStock, criteria.MaxStock)

	query := fmt.Sprintf("SELECT %s FROM %s", itemColumnList, tableMagicItems)
	if len(b.clauses) > 0 {
		query += " WHERE " + strings.Join(b.clauses, " AND ")
	}
	query += " ORDER BY id"

	return query, b.args
}
