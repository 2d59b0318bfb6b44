// Package report monta as especificações de gráfico (histograma, boxplot e
// barras) entregues ao renderizador. Nada aqui desenha; só produz dados.
package report

import (
	"fmt"
	"math"
	"slices"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// DefaultBins é o número de faixas usado nos histogramas de vendas
const DefaultBins = 10

// Histogram distribui os valores em faixas de mesma largura entre o mínimo e o
// máximo. A última faixa é fechada nas duas pontas.
func Histogram(title string, amounts []int64, bins int) *domain.Chart {
	if len(amounts) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	lo, hi := float64(slices.Min(amounts)), float64(slices.Max(amounts))
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, a := range amounts {
		idx := int((float64(a) - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	points := make([]domain.ChartPoint, 0, bins)
	for i, c := range counts {
		from := lo + float64(i)*width
		to := from + width
		if i == bins-1 {
			to = hi
		}
		points = append(points, domain.ChartPoint{
			Label: fmt.Sprintf("%s - %s", formatEdge(from), formatEdge(to)),
			Value: float64(c),
			From:  utils.RoundWithTwoDecimalPlace(from),
			To:    utils.RoundWithTwoDecimalPlace(to),
		})
	}

	return &domain.Chart{
		Type:   domain.ChartHistogram,
		Title:  title,
		XAxis:  "Sales Amount",
		YAxis:  "Frequency",
		Series: []domain.ChartSeries{{Name: "Frequency", Data: points}},
	}
}

// BoxPlot resume a distribuição em quartis, com bigodes em 1,5 x IQR
func BoxPlot(title string, amounts []int64) *domain.Chart {
	if len(amounts) == 0 {
		return nil
	}

	sorted := make([]float64, 0, len(amounts))
	for _, a := range amounts {
		sorted = append(sorted, float64(a))
	}
	slices.Sort(sorted)

	q1 := Percentile(sorted, 25)
	q3 := Percentile(sorted, 75)
	iqr := q3 - q1
	lowLimit, highLimit := q1-1.5*iqr, q3+1.5*iqr

	box := &domain.BoxSummary{
		Q1:           q1,
		Median:       Percentile(sorted, 50),
		Q3:           q3,
		LowerWhisker: q1,
		UpperWhisker: q3,
	}

	// bigodes vão até o valor mais extremo dentro dos limites
	for _, v := range sorted {
		if v >= lowLimit {
			box.LowerWhisker = math.Min(v, q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= highLimit {
			box.UpperWhisker = math.Max(sorted[i], q3)
			break
		}
	}
	for _, v := range sorted {
		if v < lowLimit || v > highLimit {
			box.Outliers = append(box.Outliers, v)
		}
	}

	return &domain.Chart{
		Type:  domain.ChartBoxPlot,
		Title: title,
		XAxis: "Sales Amount",
		Box:   box,
	}
}

// Bar gera um gráfico de barras com um ponto por filial, na ordem recebida
func Bar(title string, totals domain.BranchTotals) *domain.Chart {
	points := make([]domain.ChartPoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, domain.ChartPoint{
			Label: t.BranchID,
			Value: float64(t.Total),
		})
	}

	return &domain.Chart{
		Type:   domain.ChartBar,
		Title:  title,
		XAxis:  "Branch ID",
		YAxis:  "Total Sales Amount",
		Series: []domain.ChartSeries{{Name: "Total", Data: points}},
	}
}

// Percentile calcula o percentil p (0-100) com interpolação linear entre os
// vizinhos. Espera os valores ordenados e não vazios.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

func formatEdge(v float64) string {
	v = utils.RoundWithTwoDecimalPlace(v)
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// WithCurrency acrescenta a moeda ao eixo de valores do gráfico
func WithCurrency(chart *domain.Chart, currency string) *domain.Chart {
	if chart == nil || currency == "" {
		return chart
	}
	if chart.Type == domain.ChartBar {
		chart.YAxis = fmt.Sprintf("%s (%s)", chart.YAxis, currency)
	} else {
		chart.XAxis = fmt.Sprintf("%s (%s)", chart.XAxis, currency)
	}
	return chart
}
