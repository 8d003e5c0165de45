package orderbook

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// PivotMetric selects what a pivot cell accumulates.
type PivotMetric string

const (
	// PivotMetricQuantity sums ordered quantities.
	PivotMetricQuantity PivotMetric = "quantity"
	// PivotMetricValue sums GST-inclusive totals.
	PivotMetricValue PivotMetric = "value"
)

// IsValid checks if the metric is a known PivotMetric
func (m PivotMetric) IsValid() bool {
	return m == PivotMetricQuantity || m == PivotMetricValue
}

// NameSet is a case-insensitive set of names used as a pivot filter.
// An empty set places no restriction on its axis.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from names, trimming whitespace and
// dropping blanks.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Contains reports set membership ignoring case. An empty set contains
// everything.
func (s NameSet) Contains(name string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// PivotTable is the derived two-dimensional aggregation of orders:
// rows keyed by product, columns keyed by company, cells holding the
// accumulated metric with explicit zeros for unmatched pairs.
type PivotTable struct {
	Metric       PivotMetric
	Products     []string
	Parties      []string
	Cells        [][]decimal.Decimal
	RowTotals    []decimal.Decimal
	ColumnTotals []decimal.Decimal
	GrandTotal   decimal.Decimal
}

// Cell returns the accumulated value for a (product, party) pair by
// axis position.
func (t *PivotTable) Cell(row, col int) decimal.Decimal {
	return t.Cells[row][col]
}

// BuildPivot aggregates orders into a pivot table. Orders are kept when
// their product is in productFilter and their company is in partyFilter
// (an empty filter keeps everything on that axis). Rows with a blank
// product or company are skipped. A filtered set with no orders yields
// empty axes and a zero grand total. Pure function of its inputs.
func BuildPivot(orders []Order, productFilter, partyFilter NameSet, metric PivotMetric) *PivotTable {
	if !metric.IsValid() {
		metric = PivotMetricQuantity
	}

	type pairKey struct {
		product string
		company string
	}

	sums := make(map[pairKey]decimal.Decimal)
	productSeen := make(map[string]struct{})
	partySeen := make(map[string]struct{})

	for _, o := range orders {
		product := strings.TrimSpace(o.Product)
		company := strings.TrimSpace(o.Company)
		if product == "" || company == "" {
			continue
		}
		if !productFilter.Contains(product) || !partyFilter.Contains(company) {
			continue
		}

		var v decimal.Decimal
		switch metric {
		case PivotMetricValue:
			v = o.Total
		default:
			v = decimal.NewFromInt(o.Quantity)
		}

		key := pairKey{product: product, company: company}
		sums[key] = sums[key].Add(v)
		productSeen[product] = struct{}{}
		partySeen[company] = struct{}{}
	}

	products := sortedKeys(productSeen)
	parties := sortedKeys(partySeen)

	table := &PivotTable{
		Metric:       metric,
		Products:     products,
		Parties:      parties,
		Cells:        make([][]decimal.Decimal, len(products)),
		RowTotals:    make([]decimal.Decimal, len(products)),
		ColumnTotals: make([]decimal.Decimal, len(parties)),
	}

	for i, product := range products {
		table.Cells[i] = make([]decimal.Decimal, len(parties))
		for j, party := range parties {
			cell := sums[pairKey{product: product, company: party}]
			table.Cells[i][j] = cell
			table.RowTotals[i] = table.RowTotals[i].Add(cell)
			table.ColumnTotals[j] = table.ColumnTotals[j].Add(cell)
			table.GrandTotal = table.GrandTotal.Add(cell)
		}
	}

	return table
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
