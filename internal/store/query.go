package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseVariationsSelect = `SELECT id, product_id, product_name, COALESCE(product_sku, ''),
	old_price, new_price, variation_pct, variation_amount,
	document_number, document_date, supplier_name,
	alert_type, severity, is_processed, COALESCE(notes, ''), created_at
FROM price_variations`

const countVariationsSelect = "SELECT COUNT(*) FROM price_variations"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a variation
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *VariationQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Severity != nil {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", paramIdx))
		args = append(args, string(*q.Severity))
		paramIdx++
	}

	if q.AlertType != nil {
		conditions = append(conditions, fmt.Sprintf("alert_type = $%d", paramIdx))
		args = append(args, string(*q.AlertType))
		paramIdx++
	}

	if q.ProductID != nil {
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", paramIdx))
		args = append(args, *q.ProductID)
		paramIdx++
	}

	if q.Processed != nil {
		conditions = append(conditions, fmt.Sprintf("is_processed = $%d", paramIdx))
		args = append(args, *q.Processed)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseVariationsSelect, whereClause, limit, offset,
	)
	countSQL = countVariationsSelect + whereClause

	return dataSQL, countSQL, args
}
