package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/davicafu/adsflow/internal/ad/application"
	"github.com/davicafu/adsflow/internal/shared/infra/platform/identity"
)

const callerHeader = "X-User-Id"

// Handler adapta las peticiones de API Gateway (proxy) al pipeline de creación.
type Handler struct {
	service *application.AdService
	log     *zap.Logger
}

func NewHandler(service *application.AdService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle tiene la firma que espera lambda.Start; nunca devuelve error al runtime.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.log.Warn("Request body is not valid base64", zap.Error(err))
			return h.reply(http.StatusBadRequest, application.CreateAdResponse{Message: application.MessageMalformedInput}), nil
		}
		body = decoded
	}

	ctx = identity.WithCaller(ctx, callerID(req))
	ad, err := h.service.CreateAd(ctx, body)
	status, resp := application.Respond(ad, err)
	return h.reply(status, resp), nil
}

func (h *Handler) reply(status int, resp application.CreateAdResponse) events.APIGatewayProxyResponse {
	data, err := json.Marshal(resp)
	if err != nil {
		h.log.Error("Failed to encode response", zap.Error(err))
		status, data = http.StatusInternalServerError, []byte(`{"message":"`+application.MessageInternalError+`"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}
}

// callerID toma el sub de los claims del authorizer, después la cabecera, y si no, anónimo.
func callerID(req events.APIGatewayProxyRequest) string {
	if claims, ok := req.RequestContext.Authorizer["claims"].(map[string]interface{}); ok {
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			return sub
		}
	}
	for name, value := range req.Headers {
		if strings.EqualFold(name, callerHeader) && value != "" {
			return value
		}
	}
	return identity.Anonymous
}
