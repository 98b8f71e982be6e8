package identity

import "context"

// Anonymous identifica al llamador cuando la petición no trae identidad.
const Anonymous = "anonymous"

type callerKey struct{}

// WithCaller guarda el id del llamador en el contexto. Solo se usa para trazas.
func WithCaller(ctx context.Context, callerID string) context.Context {
	if callerID == "" {
		callerID = Anonymous
	}
	return context.WithValue(ctx, callerKey{}, callerID)
}

// CallerFromContext devuelve el id del llamador o Anonymous.
func CallerFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(callerKey{}).(string); ok && id != "" {
		return id
	}
	return Anonymous
}
