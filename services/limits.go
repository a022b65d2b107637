package services

// Row caps applied to every list query.
const (
	MaxListRows     = 1000
	MaxWideListRows = 5000
)
