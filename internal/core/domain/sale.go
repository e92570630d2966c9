package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type SaleLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
}

func (l SaleLine) Extension() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// A Sale is an immutable record of a completed checkout.
type Sale struct {
	ID    string
	Date  time.Time
	Lines []SaleLine
	Total float64
}

// NewSale builds a sale from line snapshots. Total is derived from the lines.
func NewSale(id string, at time.Time, lines []SaleLine) (Sale, error) {
	if len(lines) == 0 {
		return Sale{}, ErrEmptyCart
	}

	s := Sale{
		ID:    id,
		Date:  at,
		Lines: append([]SaleLine(nil), lines...),
	}
	for _, l := range s.Lines {
		s.Total += l.Extension()
	}
	return s, nil
}

func (s Sale) Units() int {
	var n int
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// Matches reports whether term is a case-insensitive substring of the sale
// id, of any line name or of the long formatted date.
func (s Sale) Matches(term string, loc *time.Location) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(s.ID), term) {
		return true
	}
	for _, l := range s.Lines {
		if strings.Contains(strings.ToLower(l.Name), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(FormatDate(s.Date, loc)), term)
}

func (s Sale) clone() Sale {
	s.Lines = append([]SaleLine(nil), s.Lines...)
	return s
}

func CloneSales(sales []Sale) []Sale {
	res := make([]Sale, len(sales))
	for i, s := range sales {
		res[i] = s.clone()
	}
	return res
}

func SearchSales(sales []Sale, term string, loc *time.Location) []Sale {
	res := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if s.Matches(term, loc) {
			res = append(res, s)
		}
	}
	return res
}

// SortByDateDesc returns a copy ordered newest first.
// Sales with equal dates keep their relative order.
func SortByDateDesc(sales []Sale) []Sale {
	res := append([]Sale(nil), sales...)
	slices.SortStableFunc(res, func(a, b Sale) int {
		return b.Date.Compare(a.Date)
	})
	return res
}

type SaleStats struct {
	Count        int
	TotalRevenue float64
	AverageSale  float64
	TotalUnits   int
}

func ComputeStats(sales []Sale) SaleStats {
	var st SaleStats
	st.Count = len(sales)
	for _, s := range sales {
		st.TotalRevenue += s.Total
		st.TotalUnits += s.Units()
	}
	if st.Count > 0 {
		st.AverageSale = st.TotalRevenue / float64(st.Count)
	}
	return st
}

func (st SaleStats) String() string {
	return fmt.Sprintf(
		"count=%d revenue=%.2f average=%.2f units=%d",
		st.Count, st.TotalRevenue, st.AverageSale, st.TotalUnits,
	)
}
