package rest

import (
	"errors"
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type SelectionHandler struct {
	toggleFavoriteUC       usecases_port.ToggleFavoriteUseCase
	getSelectionUC         usecases_port.GetSelectionUseCase
	addToComparisonUC      usecases_port.AddToComparisonUseCase
	removeFromComparisonUC usecases_port.RemoveFromComparisonUseCase
}

func NewSelectionHandler(toggleFavoriteUC usecases_port.ToggleFavoriteUseCase,
	getSelectionUC usecases_port.GetSelectionUseCase,
	addToComparisonUC usecases_port.AddToComparisonUseCase,
	removeFromComparisonUC usecases_port.RemoveFromComparisonUseCase) *SelectionHandler {
	return &SelectionHandler{
		toggleFavoriteUC:       toggleFavoriteUC,
		getSelectionUC:         getSelectionUC,
		addToComparisonUC:      addToComparisonUC,
		removeFromComparisonUC: removeFromComparisonUC,
	}
}

// ToggleFavorite обрабатывает POST /api/v1/selection/favorites/{propertyID}
func (h *SelectionHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := contextkeys.VisitorIDFromContext(r.Context())

	result, err := h.toggleFavoriteUC.Execute(r.Context(), visitorID, chi.URLParam(r, "propertyID"))
	if err != nil {
		writeSelectionError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, FavoriteToggleResponse{
		PropertyID:  result.PropertyID,
		IsFavorite:  result.IsFavorite,
		FavoriteIDs: nonNil(result.FavoriteIDs),
	})
}

// GetFavorites обрабатывает GET /api/v1/selection/favorites
func (h *SelectionHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	h.getList(w, r, domain.SelectionFavorites)
}

// GetComparison обрабатывает GET /api/v1/selection/comparison
func (h *SelectionHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	h.getList(w, r, domain.SelectionComparison)
}

// AddToComparison обрабатывает POST /api/v1/selection/comparison/{propertyID}
func (h *SelectionHandler) AddToComparison(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := contextkeys.VisitorIDFromContext(r.Context())

	ids, err := h.addToComparisonUC.Execute(r.Context(), visitorID, chi.URLParam(r, "propertyID"))
	if err != nil {
		writeSelectionError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SelectionResponse{List: string(domain.SelectionComparison), PropertyIDs: nonNil(ids)})
}

// RemoveFromComparison обрабатывает DELETE /api/v1/selection/comparison/{propertyID}
func (h *SelectionHandler) RemoveFromComparison(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := contextkeys.VisitorIDFromContext(r.Context())

	ids, err := h.removeFromComparisonUC.Execute(r.Context(), visitorID, chi.URLParam(r, "propertyID"))
	if err != nil {
		writeSelectionError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SelectionResponse{List: string(domain.SelectionComparison), PropertyIDs: nonNil(ids)})
}

func (h *SelectionHandler) getList(w http.ResponseWriter, r *http.Request, list domain.SelectionList) {
	visitorID, _ := contextkeys.VisitorIDFromContext(r.Context())

	ids, err := h.getSelectionUC.Execute(r.Context(), visitorID, list)
	if err != nil {
		writeSelectionError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SelectionResponse{List: string(list), PropertyIDs: nonNil(ids)})
}

func writeSelectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrComparisonFull):
		WriteJSONError(w, http.StatusConflict, "Можно сравнивать не более 3 объектов")
	case errors.Is(err, domain.ErrFavoritesFull):
		WriteJSONError(w, http.StatusConflict, "Избранное заполнено")
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, domain.ErrInvalidPropertyID):
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID")
	case errors.Is(err, domain.ErrInvalidVisitorID):
		WriteJSONError(w, http.StatusBadRequest, "Visitor ID is required")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update selection")
	}
}
