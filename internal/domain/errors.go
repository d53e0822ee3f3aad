package domain

import "errors"

// ErrDataUnavailable indica que un batch de datos de mercado no se pudo obtener.
// Aborta la evaluación completa: nunca se devuelven decisiones parciales.
var ErrDataUnavailable = errors.New("market data unavailable")

// ErrInvalidReading indica que un símbolo no tiene precio de referencia utilizable
// (cierre anterior cero o ausente). Es recuperable: el símbolo se omite.
var ErrInvalidReading = errors.New("invalid reading")
