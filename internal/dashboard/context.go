package dashboard

import "context"

type contextKey string

const clientIDKey contextKey = "clientID"

func NewContextWithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

func ClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(clientIDKey).(string)

	return clientID, ok
}
