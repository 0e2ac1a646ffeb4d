package rest

import (
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/port"

	"github.com/google/uuid"
)

// VisitorMiddleware определяет владельца списков избранного и сравнения.
// Браузер хранит идентификатор у себя и присылает в X-Visitor-ID; если его нет или он
// не похож на uuid, выдается новый. Идентификатор всегда возвращается в ответе.
func VisitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := r.Header.Get(VisitorIDHeader)
		parsed, err := uuid.Parse(visitorID)
		if err != nil {
			visitorID = uuid.New().String()
			logger := contextkeys.LoggerFromContext(r.Context())
			logger.Debug("Issued new visitor id", port.Fields{"visitor_id": visitorID})
		} else {
			visitorID = parsed.String()
		}

		w.Header().Set(VisitorIDHeader, visitorID)
		ctx := contextkeys.ContextWithVisitorID(r.Context(), visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
