// services/dashboard.go
package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"vendora-backend/models"
	"vendora-backend/utils"
)

// DashboardInput is the already-loaded data the summary is computed from.
// Everything in this file is a pure function of it; nothing here touches
// storage.
type DashboardInput struct {
	Orders   []models.Order
	Markets  []models.MarketEvent
	Sales    []models.MarketSale
	Expenses []models.Expense
}

type MonthlyBucket struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

type DashboardSummary struct {
	Revenue        float64         `json:"revenue"`
	Expenses       float64         `json:"expenses"`
	NetProfit      float64         `json:"netProfit"`
	OpenOrders     int             `json:"openOrders"`
	PaidOrders     int             `json:"paidOrders"`
	MarketCount    int             `json:"marketCount"`
	AvailableYears []int           `json:"availableYears"`
	Monthly        []MonthlyBucket `json:"monthly"`
	ChartMax       float64         `json:"chartMax"`
}

// dateYear reads the calendar year off a stored ISO date string.
func dateYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// BuildDashboard computes the dashboard numbers. A nil year means "all
// years"; a selected year restricts the totals and produces a 12-month
// series, while the all-years view shows a trailing 6-month series computed
// from the unfiltered collections. That asymmetry is deliberate and matches
// the year-chip behavior of the app.
func BuildDashboard(in DashboardInput, year *int, now time.Time, months [12]string) DashboardSummary {
	yearPrefix := ""
	if year != nil {
		yearPrefix = strconv.Itoa(*year)
	}
	matches := func(date string) bool {
		return yearPrefix == "" || strings.HasPrefix(date, yearPrefix)
	}

	filtered := DashboardInput{
		Orders:   []models.Order{},
		Markets:  []models.MarketEvent{},
		Sales:    []models.MarketSale{},
		Expenses: []models.Expense{},
	}
	for _, o := range in.Orders {
		if matches(o.EffectiveDate()) {
			filtered.Orders = append(filtered.Orders, o)
		}
	}
	for _, m := range in.Markets {
		if matches(m.Date) {
			filtered.Markets = append(filtered.Markets, m)
		}
	}
	for _, s := range in.Sales {
		if matches(s.CreatedAt) {
			filtered.Sales = append(filtered.Sales, s)
		}
	}
	for _, e := range in.Expenses {
		if matches(e.EffectiveDate()) {
			filtered.Expenses = append(filtered.Expenses, e)
		}
	}

	revenue := monthRevenue(filtered, "")
	expenses := monthExpenses(filtered, "")

	var open, paid int
	for _, o := range filtered.Orders {
		switch o.Status {
		case models.OrderStatusOpen:
			open++
		case models.OrderStatusPaid:
			paid++
		}
	}

	var monthly []MonthlyBucket
	if year != nil {
		for m := 0; m < 12; m++ {
			prefix := yearPrefix + "-" + twoDigit(m+1)
			monthly = append(monthly, MonthlyBucket{
				Month:    months[m],
				Revenue:  monthRevenue(filtered, prefix),
				Expenses: monthExpenses(filtered, prefix),
			})
		}
	} else {
		// Trailing six calendar months over the unfiltered data.
		for i := 5; i >= 0; i-- {
			first := utils.MonthStart(now).AddDate(0, -i, 0)
			prefix := utils.MonthPrefix(first)
			monthly = append(monthly, MonthlyBucket{
				Month:    months[first.Month()-1],
				Revenue:  monthRevenue(in, prefix),
				Expenses: monthExpenses(in, prefix),
			})
		}
	}

	chartMax := 1.0
	for _, b := range monthly {
		if b.Revenue > chartMax {
			chartMax = b.Revenue
		}
		if b.Expenses > chartMax {
			chartMax = b.Expenses
		}
	}

	return DashboardSummary{
		Revenue:        revenue,
		Expenses:       expenses,
		NetProfit:      revenue - expenses,
		OpenOrders:     open,
		PaidOrders:     paid,
		MarketCount:    len(filtered.Markets),
		AvailableYears: AvailableYears(in, now),
		Monthly:        monthly,
		ChartMax:       chartMax,
	}
}

// monthRevenue sums non-cancelled order totals plus market sale amounts,
// optionally restricted to one YYYY-MM prefix. An empty prefix matches all.
func monthRevenue(in DashboardInput, prefix string) float64 {
	var sum float64
	for _, o := range in.Orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		if strings.HasPrefix(o.EffectiveDate(), prefix) {
			sum += o.Total
		}
	}
	for _, s := range in.Sales {
		if strings.HasPrefix(s.CreatedAt, prefix) {
			sum += s.Amount * float64(s.Quantity)
		}
	}
	return sum
}

// monthExpenses sums expense amounts plus market stand fees and travel costs.
func monthExpenses(in DashboardInput, prefix string) float64 {
	var sum float64
	for _, e := range in.Expenses {
		if strings.HasPrefix(e.EffectiveDate(), prefix) {
			sum += e.Amount
		}
	}
	for _, m := range in.Markets {
		if strings.HasPrefix(m.Date, prefix) {
			sum += m.StandFee + m.TravelCost
		}
	}
	return sum
}

// AvailableYears lists the distinct years seen across all collections,
// newest first. With no data at all it falls back to the current year.
func AvailableYears(in DashboardInput, now time.Time) []int {
	seen := map[int]bool{}
	add := func(date string) {
		if y, ok := dateYear(date); ok {
			seen[y] = true
		}
	}
	for _, o := range in.Orders {
		add(o.EffectiveDate())
	}
	for _, m := range in.Markets {
		add(m.Date)
	}
	for _, s := range in.Sales {
		add(s.CreatedAt)
	}
	for _, e := range in.Expenses {
		add(e.EffectiveDate())
	}
	if len(seen) == 0 {
		seen[now.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// CategoryTotal is one row of the expense summary.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ExpenseCategoryTotals groups expenses by the fixed category list and drops
// groups summing to zero.
func ExpenseCategoryTotals(expenses []models.Expense) []CategoryTotal {
	totals := []CategoryTotal{}
	for _, category := range models.ExpenseCategories {
		var sum float64
		for _, e := range expenses {
			if e.Category == category {
				sum += e.Amount
			}
		}
		if sum > 0 {
			totals = append(totals, CategoryTotal{Category: category, Total: sum})
		}
	}
	return totals
}

// MarketSummary is the profit view of one market event.
type MarketSummary struct {
	TotalSales float64 `json:"totalSales"`
	TotalCosts float64 `json:"totalCosts"`
	Profit     float64 `json:"profit"`
}

// SummarizeMarket computes sales, costs and profit for one market's sales.
func SummarizeMarket(market models.MarketEvent, sales []models.MarketSale) MarketSummary {
	var totalSales float64
	for _, s := range sales {
		totalSales += s.Amount * float64(s.Quantity)
	}
	totalCosts := market.StandFee + market.TravelCost
	return MarketSummary{
		TotalSales: totalSales,
		TotalCosts: totalCosts,
		Profit:     totalSales - totalCosts,
	}
}
