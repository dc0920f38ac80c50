package store

import "retailpos/internal/domain/model"

// SalesLog is the append-only list of committed sales.
type SalesLog struct {
	sales []model.Sale
	dirty bool
}

func NewSalesLog() *SalesLog {
	return &SalesLog{}
}

// Replace swaps the whole history, used by Load and imports.
func (l *SalesLog) Replace(sales []model.Sale) {
	l.sales = make([]model.Sale, 0, len(sales))
	for _, s := range sales {
		l.sales = append(l.sales, cloneSale(s))
	}
}

// Append stores a copy of s at the end of the log.
func (l *SalesLog) Append(s model.Sale) {
	l.sales = append(l.sales, cloneSale(s))
	l.dirty = true
}

// All returns copies of every sale in append order.
func (l *SalesLog) All() []model.Sale {
	out := make([]model.Sale, len(l.sales))
	for i, s := range l.sales {
		out[i] = cloneSale(s)
	}
	return out
}

func (l *SalesLog) Len() int { return len(l.sales) }

func (l *SalesLog) Dirty() bool { return l.dirty }

func (l *SalesLog) MarkDirty() { l.dirty = true }

func (l *SalesLog) MarkClean() { l.dirty = false }

func cloneSale(s model.Sale) model.Sale {
	items := make([]model.SaleItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}
