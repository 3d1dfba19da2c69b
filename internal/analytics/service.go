package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dataset_explorer/internal/dataset"
)

// Service provides filtering and aggregation over a loaded dataset.
type Service struct {
	storage dataset.Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage dataset.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Rows returns the full (unfiltered) row count.
func (s *Service) Rows() int {
	return s.storage.Len()
}

// SizeBytes returns the on-disk size of the dataset file, zero if unknown.
func (s *Service) SizeBytes() int64 {
	return s.storage.SizeBytes()
}

// DateBounds returns the first and last calendar days present in the
// dataset, formatted YYYY-MM-DD. Empty strings for an empty dataset.
func (s *Service) DateBounds() (min, max string) {
	all := s.storage.All()
	for i := range all {
		d := all[i].Date()
		if min == "" || d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// Summary computes the headline numbers for the filtered rows.
func (s *Service) Summary(f Filter) (Summary, error) {
	if err := f.Validate(); err != nil {
		return Summary{}, err
	}
	c := f.compile()

	sum := Summary{Revenue: decimal.Zero, AvgOrderValue: decimal.Zero}
	customers := make(map[int64]struct{})

	all := s.storage.All()
	for i := range all {
		t := &all[i]
		if !c.matches(t) {
			continue
		}
		sum.Transactions++
		sum.Revenue = sum.Revenue.Add(decimal.NewFromFloat(t.Total))
		customers[t.CustomerID] = struct{}{}
	}
	sum.UniqueCustomers = len(customers)
	if sum.Transactions > 0 {
		sum.AvgOrderValue = sum.Revenue.DivRound(decimal.NewFromInt(int64(sum.Transactions)), 2)
	}

	s.logger.Info("summary computed",
		zap.Int("filtered_rows", sum.Transactions),
		zap.Int("total_rows", s.storage.Len()),
	)
	return sum, nil
}

// DailyRevenue groups the filtered rows by calendar day, ascending by date.
func (s *Service) DailyRevenue(f Filter) ([]DayRevenue, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := f.compile()

	byDay := make(map[string]*DayRevenue)
	all := s.storage.All()
	for i := range all {
		t := &all[i]
		if !c.matches(t) {
			continue
		}
		day := t.Date()
		agg, ok := byDay[day]
		if !ok {
			agg = &DayRevenue{Date: day, Revenue: decimal.Zero}
			byDay[day] = agg
		}
		agg.Transactions++
		agg.Revenue = agg.Revenue.Add(decimal.NewFromFloat(t.Total))
	}

	days := make([]DayRevenue, 0, len(byDay))
	for _, agg := range byDay {
		days = append(days, *agg)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// TopDays returns the n highest-revenue days for the filter.
func (s *Service) TopDays(f Filter, n int) ([]DayRevenue, error) {
	days, err := s.DailyRevenue(f)
	if err != nil {
		return nil, err
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Revenue.GreaterThan(days[j].Revenue) })
	if len(days) > n {
		days = days[:n]
	}
	return days, nil
}

// CategorySummaries groups the filtered rows by category, revenue descending.
func (s *Service) CategorySummaries(f Filter) ([]CategorySummary, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := f.compile()

	type acc struct {
		count     int
		revenue   decimal.Decimal
		unitTotal decimal.Decimal
	}
	byCat := make(map[string]*acc)
	all := s.storage.All()
	for i := range all {
		t := &all[i]
		if !c.matches(t) {
			continue
		}
		a, ok := byCat[t.Category]
		if !ok {
			a = &acc{revenue: decimal.Zero, unitTotal: decimal.Zero}
			byCat[t.Category] = a
		}
		a.count++
		a.revenue = a.revenue.Add(decimal.NewFromFloat(t.Total))
		a.unitTotal = a.unitTotal.Add(decimal.NewFromFloat(t.UnitPrice))
	}

	out := make([]CategorySummary, 0, len(byCat))
	for cat, a := range byCat {
		out = append(out, CategorySummary{
			Category:     cat,
			Transactions: a.count,
			Revenue:      a.revenue,
			AvgUnitPrice: a.unitTotal.DivRound(decimal.NewFromInt(int64(a.count)), 2),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out, nil
}

// RegionSummaries groups the filtered rows by region, revenue descending.
func (s *Service) RegionSummaries(f Filter) ([]RegionSummary, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := f.compile()

	type acc struct {
		count   int
		revenue decimal.Decimal
	}
	byRegion := make(map[string]*acc)
	all := s.storage.All()
	for i := range all {
		t := &all[i]
		if !c.matches(t) {
			continue
		}
		a, ok := byRegion[t.Region]
		if !ok {
			a = &acc{revenue: decimal.Zero}
			byRegion[t.Region] = a
		}
		a.count++
		a.revenue = a.revenue.Add(decimal.NewFromFloat(t.Total))
	}

	out := make([]RegionSummary, 0, len(byRegion))
	for region, a := range byRegion {
		out = append(out, RegionSummary{
			Region:        region,
			Transactions:  a.count,
			Revenue:       a.revenue,
			AvgOrderValue: a.revenue.DivRound(decimal.NewFromInt(int64(a.count)), 2),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out, nil
}

// PaymentSummaries groups the filtered rows by payment method, revenue
// descending.
func (s *Service) PaymentSummaries(f Filter) ([]PaymentSummary, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := f.compile()

	type acc struct {
		count   int
		revenue decimal.Decimal
	}
	byMethod := make(map[string]*acc)
	all := s.storage.All()
	for i := range all {
		t := &all[i]
		if !c.matches(t) {
			continue
		}
		a, ok := byMethod[t.PaymentMethod]
		if !ok {
			a = &acc{revenue: decimal.Zero}
			byMethod[t.PaymentMethod] = a
		}
		a.count++
		a.revenue = a.revenue.Add(decimal.NewFromFloat(t.Total))
	}

	out := make([]PaymentSummary, 0, len(byMethod))
	for method, a := range byMethod {
		out = append(out, PaymentSummary{
			PaymentMethod: method,
			Transactions:  a.count,
			Revenue:       a.revenue,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out, nil
}

// StatusBreakdowns groups the filtered rows by order status, count
// descending, with each status' share of the filtered rows.
func (s *Service) StatusBreakdowns(f Filter) ([]StatusBreakdown, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := f.compile()

	type acc struct {
		count   int
		revenue decimal.Decimal
	}
	byStatus := make(map[string]*acc)
	total := 0
	all := s.storage.All()
	for i := range all {
		t := &all[i]
		if !c.matches(t) {
			continue
		}
		a, ok := byStatus[t.Status]
		if !ok {
			a = &acc{revenue: decimal.Zero}
			byStatus[t.Status] = a
		}
		a.count++
		a.revenue = a.revenue.Add(decimal.NewFromFloat(t.Total))
		total++
	}

	out := make([]StatusBreakdown, 0, len(byStatus))
	for status, a := range byStatus {
		out = append(out, StatusBreakdown{
			Status:       status,
			Transactions: a.count,
			Revenue:      a.revenue,
			Percent:      float64(a.count) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Transactions > out[j].Transactions })
	return out, nil
}

// Sample returns the first limit filtered rows in file order.
func (s *Service) Sample(f Filter, limit int) ([]dataset.Transaction, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := f.compile()

	out := make([]dataset.Transaction, 0, limit)
	all := s.storage.All()
	for i := range all {
		if len(out) == limit {
			break
		}
		if c.matches(&all[i]) {
			out = append(out, all[i])
		}
	}

	s.logger.Info("sample served",
		zap.Int("rows", len(out)),
		zap.Int("limit", limit),
	)
	return out, nil
}
