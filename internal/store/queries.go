package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Product queries.
const (
	queryUpsertProduct = `
		INSERT INTO products (name, sku, price, cost, created_at, updated_at)
		VALUES (@name, NULLIF(@sku, ''), @price, @cost, now(), now())
		ON CONFLICT (sku) WHERE sku IS NOT NULL DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			cost = EXCLUDED.cost,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, name, COALESCE(sku, ''), price, cost, created_at, updated_at
		FROM products
		WHERE id = $1`

	queryGetProductBySKU = `
		SELECT id, name, COALESCE(sku, ''), price, cost, created_at, updated_at
		FROM products
		WHERE lower(sku) = lower($1)`

	querySearchProducts = `
		SELECT id, name, COALESCE(sku, ''), price, cost, created_at, updated_at
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%'
		ORDER BY updated_at DESC
		LIMIT $2`

	queryUpdateProductPrice = `
		UPDATE products SET
			price = $2,
			cost = COALESCE($3, cost),
			updated_at = now()
		WHERE id = $1`
)

// Price variation queries.
const (
	queryCreateVariation = `
		INSERT INTO price_variations (
			product_id, product_name, product_sku,
			old_price, new_price, variation_pct, variation_amount,
			document_number, document_date, supplier_name,
			alert_type, severity, is_processed, notes, created_at
		) VALUES (
			@product_id, @product_name, NULLIF(@product_sku, ''),
			@old_price, @new_price, @variation_pct, @variation_amount,
			@document_number, @document_date, @supplier_name,
			@alert_type, @severity, false, NULLIF(@notes, ''), now()
		)
		RETURNING id, created_at`

	queryGetVariation = `
		SELECT id, product_id, product_name, COALESCE(product_sku, ''),
			old_price, new_price, variation_pct, variation_amount,
			document_number, document_date, supplier_name,
			alert_type, severity, is_processed, COALESCE(notes, ''), created_at
		FROM price_variations
		WHERE id = $1`

	queryMarkVariationProcessed = `
		UPDATE price_variations SET
			is_processed = true,
			notes = NULLIF($2, '')
		WHERE id = $1`

	queryCountVariationsBySeverity = `
		SELECT severity, COUNT(*)
		FROM price_variations
		WHERE is_processed = false
		GROUP BY severity`
)

// Price history queries.
const (
	queryInsertPriceHistory = `
		INSERT INTO price_history (
			product_id, price, cost, quantity, total_amount,
			document_number, document_date, supplier_name, created_at
		) VALUES (
			@product_id, @price, @cost, @quantity, @total_amount,
			@document_number, @document_date, @supplier_name, now()
		)
		RETURNING id, created_at`

	queryListPriceHistory = `
		SELECT id, product_id, price, cost, quantity, total_amount,
			document_number, document_date, supplier_name, created_at
		FROM price_history
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
)

// Alert config queries. The table holds a single row with id = 1.
const (
	queryGetAlertConfig = `
		SELECT max_price_increase_pct, critical_price_increase_pct,
			normal_discount_pct, anomalous_discount_pct,
			enable_automatic_updates, enable_price_history, updated_at
		FROM alert_config
		WHERE id = 1`

	querySaveAlertConfig = `
		INSERT INTO alert_config (
			id, max_price_increase_pct, critical_price_increase_pct,
			normal_discount_pct, anomalous_discount_pct,
			enable_automatic_updates, enable_price_history, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			max_price_increase_pct = EXCLUDED.max_price_increase_pct,
			critical_price_increase_pct = EXCLUDED.critical_price_increase_pct,
			normal_discount_pct = EXCLUDED.normal_discount_pct,
			anomalous_discount_pct = EXCLUDED.anomalous_discount_pct,
			enable_automatic_updates = EXCLUDED.enable_automatic_updates,
			enable_price_history = EXCLUDED.enable_price_history,
			updated_at = now()`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			error_text = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`
)
