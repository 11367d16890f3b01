package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/vanshika/creatorgen/internal/domain"
)

// Query is a compiled jq expression evaluated against generated datasets.
type Query struct {
	expr string
	code *gojq.Code
}

// Compile parses and compiles a jq expression.
func Compile(expr string) (*Query, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq filter %q: %w", expr, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq filter %q: %w", expr, err)
	}
	return &Query{expr: expr, code: code}, nil
}

// String returns the source expression.
func (q *Query) String() string {
	return q.expr
}

// Run evaluates the query against the whole document and returns every emitted value.
func (q *Query) Run(ctx context.Context, doc domain.Document) ([]any, error) {
	input, err := toJQValue(doc)
	if err != nil {
		return nil, err
	}
	return q.collect(ctx, input)
}

// SelectTransactions returns the transactions for which the query yields a
// truthy first result. A transaction whose evaluation errors is skipped.
func (q *Query) SelectTransactions(ctx context.Context, transactions []domain.Transaction) ([]domain.Transaction, error) {
	matched := make([]domain.Transaction, 0)
	for _, tx := range transactions {
		input, err := toJQValue(tx)
		if err != nil {
			return nil, err
		}
		iter := q.code.RunWithContext(ctx, input)
		v, ok := iter.Next()
		if !ok {
			continue
		}
		if err, isErr := v.(error); isErr {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			continue
		}
		if isTruthy(v) {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

func (q *Query) collect(ctx context.Context, input any) ([]any, error) {
	var results []any
	iter := q.code.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			return results, nil
		}
		if err, isErr := v.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				return results, nil
			}
			return nil, fmt.Errorf("jq filter %q: %w", q.expr, err)
		}
		results = append(results, v)
	}
}

// toJQValue converts typed values into the generic JSON shapes gojq operates on.
func toJQValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jq input: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode jq input: %w", err)
	}
	return out, nil
}

// isTruthy follows jq: only null and false are falsy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}
