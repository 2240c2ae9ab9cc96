package indexer

import "github.com/amitpendharkar/segy/table"

// headersToTable flattens a batch of decoded headers into a *table.Frame,
// one column per field name in fieldOrder, coercing each field's natively
// -typed value to float64 (see table.Column's documented precision
// tradeoff).
func headersToTable(headers []Header, fieldOrder []string) (*table.Frame, error) {
	columns := make([]table.Column, len(fieldOrder))
	for i, name := range fieldOrder {
		values := make([]float64, len(headers))
		for row, h := range headers {
			values[row] = toFloat64(h[name])
		}
		columns[i] = table.Column{Name: name, Values: values}
	}
	return table.NewFrame(columns)
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
