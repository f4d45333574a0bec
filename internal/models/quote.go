package models

type QuoteRequest struct {
	WordCount       int     `json:"wordCount" validate:"min=0"`
	ComplexityScore float64 `json:"complexityScore" validate:"min=0,max=1"`
	SourceLang      string  `json:"sourceLang" validate:"required"`
	TargetLang      string  `json:"targetLang" validate:"required"`
}

type DocumentQuoteRequest struct {
	DocumentURL string `json:"documentUrl" validate:"required,url"`
	SourceLang  string `json:"sourceLang" validate:"required"`
	TargetLang  string `json:"targetLang" validate:"required"`
}
