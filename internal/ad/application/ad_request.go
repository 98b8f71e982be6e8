package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/davicafu/adsflow/internal/ad/domain"
)

// Claves del cuerpo de la petición (sensibles a mayúsculas).
const (
	fieldTitle       = "title"
	fieldPrice       = "price"
	fieldImageBase64 = "imageBase64"
)

// adFields guarda los valores crudos tal y como llegan, antes de validar.
type adFields struct {
	title     json.RawMessage
	price     json.RawMessage
	imageData string
}

// ParseAdRequest decodifica y valida el cuerpo de una petición de creación.
// Devuelve ErrMalformedInput si el cuerpo no es JSON, o un error que envuelve
// ErrMissingRequiredFields y/o ErrInvalidPrice si falla la validación.
func ParseAdRequest(body []byte) (domain.AdCreationRequest, error) {
	fields, err := decodeAdFields(body)
	if err != nil {
		return domain.AdCreationRequest{}, err
	}
	return validateAdFields(fields)
}

func decodeAdFields(body []byte) (adFields, error) {
	var fields adFields

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}
	if !json.Valid(trimmed) {
		return fields, domain.ErrMalformedInput
	}

	// Un documento JSON válido que no es un objeto no aporta campos.
	if trimmed[0] != '{' {
		return fields, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fields, fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}

	fields.title = raw[fieldTitle]
	fields.price = raw[fieldPrice]

	if image := raw[fieldImageBase64]; !isAbsent(image) {
		if err := json.Unmarshal(image, &fields.imageData); err != nil {
			return fields, fmt.Errorf("%w: imageBase64 must be a string", domain.ErrMalformedInput)
		}
	}

	return fields, nil
}

// validateAdFields ejecuta las dos comprobaciones siempre y junta las violaciones.
func validateAdFields(f adFields) (domain.AdCreationRequest, error) {
	var violations []error

	title, titleOK := decodeTitle(f.title)
	priceMissing := isAbsent(f.price)
	if !titleOK || priceMissing {
		violations = append(violations, domain.ErrMissingRequiredFields)
	}

	var price float64
	if !priceMissing {
		var err error
		if price, err = decodePrice(f.price); err != nil {
			violations = append(violations, err)
		}
	}

	if len(violations) > 0 {
		return domain.AdCreationRequest{}, errors.Join(violations...)
	}

	return domain.AdCreationRequest{
		Title:     title,
		Price:     price,
		ImageData: f.imageData,
	}, nil
}

func decodeTitle(raw json.RawMessage) (string, bool) {
	if isAbsent(raw) {
		return "", false
	}
	var title string
	if err := json.Unmarshal(raw, &title); err != nil {
		return "", false
	}
	return title, title != ""
}

func decodePrice(raw json.RawMessage) (float64, error) {
	// Solo se aceptan números JSON; "10" como string no es un precio.
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, domain.ErrInvalidPrice
	}
	price, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsInf(price, 0) || math.IsNaN(price) || price <= 0 {
		return 0, domain.ErrInvalidPrice
	}
	return price, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
