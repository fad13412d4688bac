// Package report aggregates committed sales and recorded purchases into the
// store's sales and profit views. It is a pure read-side consumer: nothing
// here writes back into the sale or purchase history.
package report

import (
	"context"
	"sort"
	"time"

	"warung-pos/internal/domain"
	purchaserepo "warung-pos/internal/repository/purchase"
	salerepo "warung-pos/internal/repository/sale"
)

type saleRepo interface {
	List(ctx context.Context, f salerepo.ListFilter) ([]domain.Sale, error)
}

type purchaseRepo interface {
	List(ctx context.Context, f purchaserepo.ListFilter) ([]domain.Purchase, error)
}

type settingsGetter interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
}

type Service struct {
	sales     saleRepo
	purchases purchaseRepo
	settings  settingsGetter
}

func New(sales salerepo.Repository, purchases purchaserepo.Repository, settings settingsGetter) *Service {
	return &Service{sales: sales, purchases: purchases, settings: settings}
}

// SalesSummary totals a filtered slice of the sale history.
type SalesSummary struct {
	TotalCents   int64 `json:"totalCents"`
	Transactions int   `json:"transactions"`
	ItemsSold    int   `json:"itemsSold"`
}

// Summary computes revenue, transaction count and units sold for the given
// window. CashierID scopes the view for employee accounts.
func (s *Service) Summary(ctx context.Context, f salerepo.ListFilter) (*SalesSummary, error) {
	sales, err := s.sales.List(ctx, f)
	if err != nil {
		return nil, err
	}
	var out SalesSummary
	for _, sale := range sales {
		out.TotalCents += sale.TotalCents
		out.Transactions++
		for _, item := range sale.Items {
			out.ItemsSold += item.Quantity
		}
	}
	return &out, nil
}

// DailyProfit is one day's revenue/expense breakdown.
type DailyProfit struct {
	Date             string `json:"date"` // YYYY-MM-DD
	RevenueCents     int64  `json:"revenueCents"`
	ExpenseCents     int64  `json:"expenseCents"`
	GrossProfitCents int64  `json:"grossProfitCents"`
	NetProfitCents   int64  `json:"netProfitCents"`
}

// ProfitReport aggregates daily rows plus window totals. Net profit applies
// the store's profit percentage to the gross figure.
type ProfitReport struct {
	ProfitPercentage float64       `json:"profitPercentage"`
	Days             []DailyProfit `json:"days"`
	RevenueCents     int64         `json:"revenueCents"`
	ExpenseCents     int64         `json:"expenseCents"`
	GrossProfitCents int64         `json:"grossProfitCents"`
	NetProfitCents   int64         `json:"netProfitCents"`
}

// Profit builds the profit report for the given window.
func (s *Service) Profit(ctx context.Context, from, to time.Time) (*ProfitReport, error) {
	sales, err := s.sales.List(ctx, salerepo.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.List(ctx, purchaserepo.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailyProfit)
	day := func(t time.Time) *DailyProfit {
		key := t.Format("2006-01-02")
		if d, ok := byDay[key]; ok {
			return d
		}
		d := &DailyProfit{Date: key}
		byDay[key] = d
		return d
	}
	for _, sale := range sales {
		day(sale.CreatedAt).RevenueCents += sale.TotalCents
	}
	for _, p := range purchases {
		day(p.CreatedAt).ExpenseCents += p.PriceCents * int64(p.Quantity)
	}

	report := ProfitReport{ProfitPercentage: cfg.ProfitPercentage}
	for _, d := range byDay {
		d.GrossProfitCents = d.RevenueCents - d.ExpenseCents
		d.NetProfitCents = int64(float64(d.GrossProfitCents) * cfg.ProfitPercentage / 100)
		report.Days = append(report.Days, *d)
		report.RevenueCents += d.RevenueCents
		report.ExpenseCents += d.ExpenseCents
		report.GrossProfitCents += d.GrossProfitCents
		report.NetProfitCents += d.NetProfitCents
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date < report.Days[j].Date })
	return &report, nil
}
