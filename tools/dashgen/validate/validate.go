// Package validate checks generated dashboard queries for PromQL syntax
// errors and references to metrics the service does not export.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	promsdk "github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail validation; warnings
// flag queries referencing metrics outside the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus query in the dashboard: each
// expression must parse as PromQL and reference only known metric names.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			checkPanel(*p.Panel, known, &result)
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				checkPanel(inner, known, &result)
			}
		}
	}
	return result
}

// Expr validates a single PromQL expression against the known metric set.
func Expr(context, expr string, known map[string]bool, result *Result) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		result.errorf("%s: invalid PromQL %q: %v", context, expr, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			result.warnf("%s: unknown metric %q", context, vs.Name)
		}
		return nil
	})
}

func checkPanel(p dashboard.Panel, known map[string]bool, result *Result) {
	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}
	for _, target := range p.Targets {
		expr := targetExpr(target)
		if expr == "" {
			continue
		}
		Expr(title, expr, known, result)
	}
}

func targetExpr(target any) string {
	switch q := target.(type) {
	case promsdk.Dataquery:
		return q.Expr
	case *promsdk.Dataquery:
		return q.Expr
	default:
		return ""
	}
}
