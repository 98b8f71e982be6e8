package application

import (
	"errors"
	"net/http"

	"github.com/davicafu/adsflow/internal/ad/domain"
)

// Mensajes visibles para el cliente. Los fallos de dependencias comparten un mensaje
// genérico para no filtrar detalles internos.
const (
	MessageMalformedInput = "Invalid JSON in request body"
	MessageMissingFields  = "title and price are required"
	MessageInvalidPrice   = "Invalid data types for price"
	MessageInternalError  = "some error happened while creating the ad"
	MessageCreated        = "Ad created"
)

// CreateAdResponse es el cuerpo de respuesta de la creación.
type CreateAdResponse struct {
	Message string     `json:"message"`
	Item    *domain.Ad `json:"item,omitempty"`
}

// Respond traduce el resultado de CreateAd a un código de estado y un cuerpo.
func Respond(ad *domain.Ad, err error) (int, CreateAdResponse) {
	switch {
	case err == nil && ad != nil:
		return http.StatusCreated, CreateAdResponse{Message: MessageCreated, Item: ad}
	case errors.Is(err, domain.ErrMalformedInput):
		return http.StatusBadRequest, CreateAdResponse{Message: MessageMalformedInput}
	case errors.Is(err, domain.ErrMissingRequiredFields):
		return http.StatusBadRequest, CreateAdResponse{Message: MessageMissingFields}
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, CreateAdResponse{Message: MessageInvalidPrice}
	default:
		return http.StatusInternalServerError, CreateAdResponse{Message: MessageInternalError}
	}
}
