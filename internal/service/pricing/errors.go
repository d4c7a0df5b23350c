package pricing

import "errors"

var (
	// ErrUnknownPricingMode возвращается для неизвестной стратегии расчета
	ErrUnknownPricingMode = errors.New("unknown pricing mode")

	// ErrPriceTables возвращается, когда не удалось получить ценовые таблицы
	ErrPriceTables = errors.New("price tables unavailable")
)
