package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKnown = map[string]bool{
	"facturio_http_requests_total":  true,
	"facturio:http_requests:rate5m": true,
}

func TestExpr_Valid(t *testing.T) {
	t.Parallel()

	var result Result
	Expr("panel", `sum(rate(facturio_http_requests_total[5m]))`, testKnown, &result)
	assert.True(t, result.Ok())
	assert.Empty(t, result.Warnings)
}

func TestExpr_RecordingRuleName(t *testing.T) {
	t.Parallel()

	var result Result
	Expr("panel", `facturio:http_requests:rate5m * 60`, testKnown, &result)
	assert.True(t, result.Ok())
	assert.Empty(t, result.Warnings)
}

func TestExpr_UnknownMetricWarns(t *testing.T) {
	t.Parallel()

	var result Result
	Expr("panel", `rate(facturio_nonexistent_total[5m])`, testKnown, &result)
	assert.True(t, result.Ok())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "facturio_nonexistent_total")
}

func TestExpr_InvalidPromQL(t *testing.T) {
	t.Parallel()

	var result Result
	Expr("panel", `sum(rate(`, testKnown, &result)
	assert.False(t, result.Ok())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid PromQL")
}
