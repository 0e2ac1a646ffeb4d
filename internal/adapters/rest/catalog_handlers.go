package rest

import (
	"net/http"
	"strings"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"
)

type CatalogHandler struct {
	searchCatalogUC   usecases_port.SearchCatalogUseCase
	getDictionariesUC usecases_port.GetDictionariesUseCase
}

func NewCatalogHandler(searchCatalogUC usecases_port.SearchCatalogUseCase,
	getDictionariesUC usecases_port.GetDictionariesUseCase) *CatalogHandler {
	return &CatalogHandler{
		searchCatalogUC:   searchCatalogUC,
		getDictionariesUC: getDictionariesUC,
	}
}

// SearchCatalog обрабатывает GET /api/v1/catalog
func (h *CatalogHandler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	spec, sortKey, err := LoadCatalogQuery(r.URL.Query())
	if err != nil {
		logger.Warn("Invalid catalog query parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.searchCatalogUC.Execute(r.Context(), spec, sortKey)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	RespondWithJSON(w, http.StatusOK, toCatalogResponse(page))
}

// GetDictionaries обрабатывает GET /api/v1/dictionaries?names=a,b
func (h *CatalogHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, name := range strings.Split(r.URL.Query().Get("names"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionaryItemsResponse, len(dictionaries))
	for key, items := range dictionaries {
		response[key] = toDictionaryItems(items)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

func toDictionaryItems(items []domain.DictionaryItem) []DictionaryItemResponse {
	out := make([]DictionaryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, DictionaryItemResponse{
			SystemName:  item.SystemName,
			DisplayName: item.DisplayName,
		})
	}
	return out
}
