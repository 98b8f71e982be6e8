package application

import (
	"testing"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdRequest_Valid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected domain.AdCreationRequest
	}{
		{
			name:     "sin imagen",
			body:     `{"title":"abcd","price":10}`,
			expected: domain.AdCreationRequest{Title: "abcd", Price: 10},
		},
		{
			name:     "con imagen",
			body:     `{"title":"abcd","price":10.5,"imageBase64":"aGVsbG8="}`,
			expected: domain.AdCreationRequest{Title: "abcd", Price: 10.5, ImageData: "aGVsbG8="},
		},
		{
			name:     "imagen null se ignora",
			body:     `{"title":"abcd","price":3,"imageBase64":null}`,
			expected: domain.AdCreationRequest{Title: "abcd", Price: 3},
		},
		{
			name:     "imagen vacía equivale a sin imagen",
			body:     `{"title":"abcd","price":3,"imageBase64":""}`,
			expected: domain.AdCreationRequest{Title: "abcd", Price: 3},
		},
		{
			name:     "campos desconocidos se ignoran",
			body:     `{"title":"abcd","price":1e2,"color":"red"}`,
			expected: domain.AdCreationRequest{Title: "abcd", Price: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseAdRequest([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
			assert.Equal(t, tt.expected.ImageData != "", req.HasImage())
		})
	}
}

func TestParseAdRequest_Malformed(t *testing.T) {
	bodies := map[string]string{
		"json truncado":          `{"title":"abcd"`,
		"texto plano":            `not json`,
		"imagen que no es texto": `{"title":"abcd","price":10,"imageBase64":42}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAdRequest([]byte(body))
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
			assert.NotErrorIs(t, err, domain.ErrValidationFailed)
		})
	}
}

func TestParseAdRequest_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"cuerpo vacío":           ``,
		"objeto vacío":           `{}`,
		"sin título":             `{"price":10}`,
		"sin precio":             `{"title":"abcd"}`,
		"título vacío":           `{"title":"","price":10}`,
		"título no es texto":     `{"title":123,"price":10}`,
		"precio null":            `{"title":"abcd","price":null}`,
		"json que no es objeto":  `[1,2,3]`,
		"clave con otra grafía":  `{"Title":"abcd","price":10}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAdRequest([]byte(body))
			assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
			assert.ErrorIs(t, err, domain.ErrValidationFailed)
		})
	}
}

func TestParseAdRequest_InvalidPrice(t *testing.T) {
	bodies := map[string]string{
		"precio como texto":  `{"title":"abcd","price":"10"}`,
		"precio booleano":    `{"title":"abcd","price":true}`,
		"precio objeto":      `{"title":"abcd","price":{"amount":10}}`,
		"precio cero":        `{"title":"abcd","price":0}`,
		"precio negativo":    `{"title":"abcd","price":-5}`,
		"precio desbordado":  `{"title":"abcd","price":1e400}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAdRequest([]byte(body))
			assert.ErrorIs(t, err, domain.ErrInvalidPrice)
			assert.NotErrorIs(t, err, domain.ErrMissingRequiredFields)
		})
	}
}

func TestParseAdRequest_BothViolations(t *testing.T) {
	_, err := ParseAdRequest([]byte(`{"price":"abc"}`))

	assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}
