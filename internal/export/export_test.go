package export_test

import (
	"bytes"
	"testing"
	"time"

	"retailpos/internal/domain/model"
	"retailpos/internal/export"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sales() []model.Sale {
	return []model.Sale{
		{
			ID:        "s1",
			Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Customer:  model.Customer{Name: "Ana", IDNumber: "12345678", Phone: "555"},
			Items: []model.SaleItem{
				{Article: "A1", Name: "Boxer", Brand: "BrandX", Quantity: 2, UnitPrice: dec("10.00")},
				{Article: "B1", Name: "Socks", Brand: "BrandY", Quantity: 3, UnitPrice: dec("0.335")},
			},
		},
		{
			ID:        "s2",
			Timestamp: time.Date(2024, 1, 20, 17, 5, 0, 0, time.UTC),
			Customer:  model.Customer{Name: "José", IDNumber: "1"},
			Items:     []model.SaleItem{{Article: "C1", Name: "Cap", Brand: "BrandZ", Quantity: 1, UnitPrice: dec("5")}},
		},
	}
}

func TestRows_OnePerItem(t *testing.T) {
	rows := export.Rows(sales(), time.UTC)

	require.Len(t, rows, 3)
	assert.Equal(t, "Ana", rows[0].Customer)
	assert.Equal(t, "555", rows[1].Phone)
	assert.True(t, dec("1.01").Equal(rows[1].LineTotal), rows[1].LineTotal.String())
	assert.Equal(t, "C1", rows[2].Article)

	assert.Equal(t,
		[]string{"15/01/2024 10:30", "Ana", "12345678", "555", "A1", "Boxer", "BrandX", "2", "20.00"},
		rows[0].Strings())
}

func TestRows_Empty(t *testing.T) {
	rows := export.Rows(nil, nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	rows := export.Rows(sales(), time.UTC)

	require.NoError(t, export.WriteXLSX(&buf, rows, dec("26.01")))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, export.Header, got[0])
	assert.Equal(t, "Ana", got[1][1])
	assert.Equal(t, "José", got[3][1])
	assert.Equal(t, "Period total", got[4][7])
	assert.Equal(t, "26.01", got[4][8])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer

	err := export.WritePDF(&buf, "Sales 01/01/2024 - 31/01/2024", export.Rows(sales(), time.UTC), dec("26.01"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_ManyRowsBreakPages(t *testing.T) {
	var many []model.Sale
	for i := 0; i < 80; i++ {
		many = append(many, sales()...)
	}
	var buf bytes.Buffer

	require.NoError(t, export.WritePDF(&buf, "Sales", export.Rows(many, time.UTC), dec("1")))
	assert.Greater(t, buf.Len(), 0)
}
