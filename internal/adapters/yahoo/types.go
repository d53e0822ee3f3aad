package yahoo

// DTOs raw de GET /v8/finance/chart/{symbol}. Solo se usan dentro de este paquete.

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta chartMeta `json:"meta"`
}

// chartMeta contiene los precios de referencia del símbolo.
type chartMeta struct {
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	PreviousClose      float64 `json:"previousClose"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
