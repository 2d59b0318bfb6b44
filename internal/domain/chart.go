package domain

const (
	ChartHistogram = "histogram"
	ChartBoxPlot   = "boxplot"
	ChartBar       = "bar"
)

// Chart é a especificação de um gráfico entregue ao renderizador externo
type Chart struct {
	Type   string        `json:"type"`
	Title  string        `json:"title"`
	XAxis  string        `json:"x_axis"`
	YAxis  string        `json:"y_axis"`
	Series []ChartSeries `json:"series,omitempty"`
	Box    *BoxSummary   `json:"box,omitempty"`
}

type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint é um ponto da série. Em histogramas From/To delimitam a faixa.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	From  float64 `json:"from,omitempty"`
	To    float64 `json:"to,omitempty"`
}

// BoxSummary contém os cinco números do boxplot e os outliers
type BoxSummary struct {
	LowerWhisker float64   `json:"lower_whisker"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers,omitempty"`
}
