package domain

// PairID identifica uno de los dos pares índice/ETF/futuro.
type PairID int

const (
	PairSPX PairID = iota
	PairIXIC
)

// PairCount es el número fijo de pares evaluados.
const PairCount = 2

// String devuelve el código corto del par.
func (p PairID) String() string {
	switch p {
	case PairSPX:
		return "SPX"
	case PairIXIC:
		return "IXIC"
	default:
		return "UNKNOWN"
	}
}

// Exchange es la bolsa doméstica donde cotiza el ETF.
type Exchange string

const (
	ExchangeSH Exchange = "sh" // Shanghái
	ExchangeSZ Exchange = "sz" // Shenzhen
)

// Pair asocia un índice, el ETF doméstico que lo replica y el futuro que lo anticipa.
type Pair struct {
	ID            PairID
	DisplayName   string // nombre localizado del índice
	IndexSymbol   string // símbolo Yahoo del índice spot
	ETFCode       string
	ETFExchange   Exchange
	ETFName       string
	FuturesSymbol string // símbolo Yahoo del futuro E-mini
}

// ETFQuoteKey devuelve la clave de cotización del ETF (ej. "sh513500").
func (p Pair) ETFQuoteKey() string {
	return string(p.ETFExchange) + p.ETFCode
}

// ETFLabel devuelve el nombre del ETF con su código, ej. "标普500ETF(513500)".
func (p Pair) ETFLabel() string {
	return p.ETFName + "(" + p.ETFCode + ")"
}

// Pairs devuelve los pares configurados, en orden fijo SPX → IXIC.
func Pairs() [PairCount]Pair {
	return [PairCount]Pair{
		{
			ID:            PairSPX,
			DisplayName:   "标普500",
			IndexSymbol:   "^GSPC",
			ETFCode:       "513500",
			ETFExchange:   ExchangeSH,
			ETFName:       "标普500ETF",
			FuturesSymbol: "ES=F",
		},
		{
			ID:            PairIXIC,
			DisplayName:   "纳斯达克",
			IndexSymbol:   "^IXIC",
			ETFCode:       "159834",
			ETFExchange:   ExchangeSZ,
			ETFName:       "纳斯达克100ETF",
			FuturesSymbol: "NQ=F",
		},
	}
}

// IndexSymbols devuelve los símbolos de índice de los pares dados.
func IndexSymbols(pairs []Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.IndexSymbol
	}
	return out
}

// FuturesSymbols devuelve los símbolos de futuros de los pares dados.
func FuturesSymbols(pairs []Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.FuturesSymbol
	}
	return out
}
