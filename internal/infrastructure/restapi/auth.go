package restapi

import "context"

type ctxKey int

const tokenKey ctxKey = iota

// WithToken anota el bearer token del operador en el contexto para que el
// cliente lo reenvíe al backend en cada petición.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom devuelve el token del contexto, vacío si no hay.
func TokenFrom(ctx context.Context) string {
	v := ctx.Value(tokenKey)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
