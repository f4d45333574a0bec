package services

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// maxDocumentBytes caps how much of a remote document we will read.
const maxDocumentBytes = 5 << 20

type DocumentResult struct {
	Text      string
	WordCount int
}

// FetchDocument downloads a document and extracts its plain text and
// word count. Only text payloads are supported; binary formats are
// handled upstream by the conversion pipeline before they reach us.
func FetchDocument(documentURL string) (DocumentResult, error) {
	client := &http.Client{Timeout: 20 * time.Second}

	req, err := http.NewRequest(http.MethodGet, documentURL, nil)
	if err != nil {
		return DocumentResult{}, fmt.Errorf("invalid document url: %w", err)
	}
	req.Header.Set("User-Agent", "marketplace-backend/documents (+github.com/polyglotdesk)")

	resp, err := client.Do(req)
	if err != nil {
		return DocumentResult{}, fmt.Errorf("document fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DocumentResult{}, fmt.Errorf("document fetch returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return DocumentResult{}, fmt.Errorf("document read failed: %w", err)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return DocumentResult{}, fmt.Errorf("document at %s is empty", documentURL)
	}

	return DocumentResult{
		Text:      text,
		WordCount: CountWords(text),
	}, nil
}

// CountWords counts whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateComplexity derives a [0,1] difficulty score from surface
// features of the text: mean word length and mean sentence length.
// It backs up the LLM classifier when that is unavailable.
func EstimateComplexity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	letters := 0
	sentences := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		if strings.ContainsAny(w, ".!?") {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	avgWord := float64(letters) / float64(len(words))
	avgSentence := float64(len(words)) / float64(sentences)

	// Short common words in short sentences score low; long words in
	// long sentences approach 1.
	wordTerm := clamp01((avgWord - 3) / 5)
	sentenceTerm := clamp01(avgSentence / 30)

	score := 0.6*wordTerm + 0.4*sentenceTerm
	if score < 0.05 {
		score = 0.05
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
