package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"dataset_explorer/internal/dataset"
)

// ErrInvalidFilter is returned when a filter names an unknown category,
// region or status value.
var ErrInvalidFilter = errors.New("invalid filter value")

// Filter selects a subset of the dataset. Zero times mean unbounded; empty
// slices mean no restriction on that column. Date bounds are inclusive at
// day granularity.
type Filter struct {
	Start      time.Time
	End        time.Time
	Categories []string
	Regions    []string
	Statuses   []string
}

// Validate checks every filter value against the dataset vocabularies.
func (f Filter) Validate() error {
	if err := checkValues(f.Categories, dataset.Categories, "category"); err != nil {
		return err
	}
	if err := checkValues(f.Regions, dataset.Regions, "region"); err != nil {
		return err
	}
	return checkValues(f.Statuses, dataset.Statuses, "status")
}

func checkValues(values, allowed []string, column string) error {
	for _, v := range values {
		found := false
		for _, a := range allowed {
			if v == a {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: unknown %s '%s'", ErrInvalidFilter, column, v)
		}
	}
	return nil
}

// compiled is a Filter with the slice restrictions turned into sets and the
// end bound pushed to the start of the following day.
type compiled struct {
	start, end time.Time
	categories map[string]bool
	regions    map[string]bool
	statuses   map[string]bool
}

func (f Filter) compile() compiled {
	c := compiled{
		start:      f.Start,
		categories: toSet(f.Categories),
		regions:    toSet(f.Regions),
		statuses:   toSet(f.Statuses),
	}
	if !f.End.IsZero() {
		c.end = f.End.AddDate(0, 0, 1)
	}
	return c
}

func (c compiled) matches(t *dataset.Transaction) bool {
	if !c.start.IsZero() && t.Timestamp.Before(c.start) {
		return false
	}
	if !c.end.IsZero() && !t.Timestamp.Before(c.end) {
		return false
	}
	if c.categories != nil && !c.categories[t.Category] {
		return false
	}
	if c.regions != nil && !c.regions[t.Region] {
		return false
	}
	if c.statuses != nil && !c.statuses[t.Status] {
		return false
	}
	return true
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Summary carries the headline numbers for the current filter.
type Summary struct {
	Transactions    int             `json:"transactions"`
	Revenue         decimal.Decimal `json:"revenue"`
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"`
	UniqueCustomers int             `json:"unique_customers"`
}

// DayRevenue aggregates one calendar day.
type DayRevenue struct {
	Date         string          `json:"date"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// CategorySummary aggregates one product category.
type CategorySummary struct {
	Category     string          `json:"category"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	AvgUnitPrice decimal.Decimal `json:"avg_unit_price"`
}

// RegionSummary aggregates one sales region.
type RegionSummary struct {
	Region        string          `json:"region"`
	Transactions  int             `json:"transactions"`
	Revenue       decimal.Decimal `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// PaymentSummary aggregates one payment method.
type PaymentSummary struct {
	PaymentMethod string          `json:"payment_method"`
	Transactions  int             `json:"transactions"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// StatusBreakdown aggregates one order status, with its share of the
// filtered rows.
type StatusBreakdown struct {
	Status       string          `json:"status"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Percent      float64         `json:"percent"`
}
