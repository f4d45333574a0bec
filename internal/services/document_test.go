package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t  "))
	assert.Equal(t, 4, CountWords("the quick brown fox"))
	assert.Equal(t, 3, CountWords("  spaced\tout\nwords  "))
}

func TestEstimateComplexity_Range(t *testing.T) {
	texts := []string{
		"",
		"Hi.",
		"The cat sat on the mat. The dog ran.",
		"Notwithstanding the aforementioned contractual obligations, indemnification provisions shall survive termination of this agreement in perpetuity pursuant to applicable jurisdictional statutes governing commercial arrangements between sophisticated counterparties.",
	}

	for _, text := range texts {
		score := EstimateComplexity(text)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestEstimateComplexity_OrdersSimpleBelowDense(t *testing.T) {
	simple := "The cat sat on the mat. The dog ran off. It was a good day."
	dense := "Notwithstanding the aforementioned contractual obligations and indemnification provisions, counterparties shall remain jointly liable for consequential damages arising from negligent misrepresentation throughout the subsistence of this agreement"

	assert.Less(t, EstimateComplexity(simple), EstimateComplexity(dense))
}

func TestFetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("One two three four five.\n"))
	}))
	defer srv.Close()

	doc, err := FetchDocument(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "One two three four five.", doc.Text)
	assert.Equal(t, 5, doc.WordCount)
}

func TestFetchDocument_Errors(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	_, err := FetchDocument(notFound.URL)
	assert.Error(t, err)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("   \n"))
	}))
	defer empty.Close()

	_, err = FetchDocument(empty.URL)
	assert.Error(t, err)
}
