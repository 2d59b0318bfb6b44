package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

func TestHistogram(t *testing.T) {
	amounts := []int64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	chart := Histogram("Monthly Sales Analysis - Branch 1", amounts, 10)
	require.NotNil(t, chart)
	assert.Equal(t, domain.ChartHistogram, chart.Type)
	require.Len(t, chart.Series, 1)

	points := chart.Series[0].Data
	require.Len(t, points, 10)

	var total float64
	for _, p := range points {
		total += p.Value
	}
	assert.Equal(t, float64(len(amounts)), total)

	// a última faixa é fechada e recebe o máximo
	assert.Equal(t, float64(2), points[9].Value)
	assert.Equal(t, float64(90), points[9].From)
	assert.Equal(t, float64(100), points[9].To)
	assert.Equal(t, "0 - 10", points[0].Label)
}

func TestHistogram_SingleDistinctValue(t *testing.T) {
	chart := Histogram("t", []int64{5, 5, 5}, 10)
	require.NotNil(t, chart)

	var total float64
	for _, p := range chart.Series[0].Data {
		total += p.Value
	}
	assert.Equal(t, float64(3), total)
	assert.Equal(t, 4.5, chart.Series[0].Data[0].From)
}

func TestHistogram_Empty(t *testing.T) {
	assert.Nil(t, Histogram("t", nil, 10))
}

func TestBoxPlot(t *testing.T) {
	chart := BoxPlot("Price Distribution - Product 1", []int64{1, 2, 3, 4, 100})
	require.NotNil(t, chart)
	require.NotNil(t, chart.Box)

	assert.Equal(t, 2.0, chart.Box.Q1)
	assert.Equal(t, 3.0, chart.Box.Median)
	assert.Equal(t, 4.0, chart.Box.Q3)
	assert.Equal(t, 1.0, chart.Box.LowerWhisker)
	assert.Equal(t, 4.0, chart.Box.UpperWhisker)
	assert.Equal(t, []float64{100}, chart.Box.Outliers)
}

func TestBoxPlot_TwoValues(t *testing.T) {
	chart := BoxPlot("t", []int64{100, 50})
	require.NotNil(t, chart)

	assert.Equal(t, 62.5, chart.Box.Q1)
	assert.Equal(t, 75.0, chart.Box.Median)
	assert.Equal(t, 87.5, chart.Box.Q3)
	assert.Empty(t, chart.Box.Outliers)
}

func TestBar(t *testing.T) {
	chart := Bar("Monthly Sales Analysis of All Branches", domain.BranchTotals{
		{BranchID: "1", Total: 100},
		{BranchID: "2", Total: 50},
	})

	require.Len(t, chart.Series, 1)
	assert.Equal(t, []domain.ChartPoint{
		{Label: "1", Value: 100},
		{Label: "2", Value: 50},
	}, chart.Series[0].Data)
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	assert.Equal(t, 10.0, Percentile(values, 0))
	assert.Equal(t, 25.0, Percentile(values, 50))
	assert.Equal(t, 40.0, Percentile(values, 100))
	assert.Equal(t, 7.0, Percentile([]float64{7}, 75))
}

func TestWithCurrency(t *testing.T) {
	hist := WithCurrency(Histogram("h", []int64{1, 2}, 2), "LKR")
	assert.Equal(t, "Sales Amount (LKR)", hist.XAxis)

	bar := WithCurrency(Bar("b", domain.BranchTotals{{BranchID: "1", Total: 3}}), "LKR")
	assert.Equal(t, "Total Sales Amount (LKR)", bar.YAxis)
	assert.Equal(t, "Branch ID", bar.XAxis)

	assert.Nil(t, WithCurrency(nil, "LKR"))
}
