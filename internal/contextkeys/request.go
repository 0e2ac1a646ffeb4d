package contextkeys

import "context"

type traceIDKeyType struct{}
type visitorIDKeyType struct{}

var (
	traceIDKey   = traceIDKeyType{}
	visitorIDKey = visitorIDKeyType{}
)

// ContextWithTraceID помещает trace_id в контекст
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает trace_id или пустую строку
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// ContextWithVisitorID помещает идентификатор посетителя, которому принадлежат
// списки избранного и сравнения.
func ContextWithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorIDKey, visitorID)
}

func VisitorIDFromContext(ctx context.Context) (string, bool) {
	visitorID, ok := ctx.Value(visitorIDKey).(string)
	return visitorID, ok && visitorID != ""
}
