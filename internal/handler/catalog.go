package handler

import (
	"net/http"
	"strings"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// CatalogReader is the read side of the item catalog
type CatalogReader interface {
	Filter(filter domain.Filter, search string) []domain.Item
	Len() int
	Version() string
	LastUpdated() string
}

// CatalogItem is one catalog entry with its display value
type CatalogItem struct {
	domain.Item
	RarityLabel  string `json:"rarity_label"`
	DisplayValue string `json:"display_value"`
}

// CatalogResponse is the filtered catalog listing
type CatalogResponse struct {
	Version       string                `json:"version"`
	LastUpdated   string                `json:"last_updated"`
	Total         int                   `json:"total"`
	Filter        domain.Filter         `json:"filter"`
	Search        string                `json:"search"`
	Items         []CatalogItem         `json:"items"`
	FilterButtons []domain.FilterButton `json:"filter_buttons"`
}

// HandleGetCatalog lists catalog items matching an optional filter and search
// @Summary List catalog items
// @Description Returns items matching the filter and a case-insensitive name search
// @Tags catalog
// @Produce json
// @Param filter query string false "Filter (all, basic, uncommon, rare, epic, legendary, ultimate, mad, mythical, pets, knives, guns)"
// @Param search query string false "Name substring"
// @Success 200 {object} CatalogResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(cat CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.Filter(strings.ToLower(queryParam(r, "filter", string(domain.FilterAll))))
		if !filter.IsValid() {
			log.Warn("Invalid catalog filter", "filter", filter)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidFilter)
			return
		}
		search := queryParam(r, "search", "")

		items := cat.Filter(filter, search)
		resp := CatalogResponse{
			Version:       cat.Version(),
			LastUpdated:   cat.LastUpdated(),
			Total:         cat.Len(),
			Filter:        filter,
			Search:        search,
			Items:         make([]CatalogItem, 0, len(items)),
			FilterButtons: domain.FilterButtons,
		}
		for _, item := range items {
			resp.Items = append(resp.Items, CatalogItem{
				Item:         item,
				RarityLabel:  item.Rarity.Label(),
				DisplayValue: valuation.FormatCompact(item.NumericValue()),
			})
		}

		log.Debug("Catalog listed", "filter", filter, "search", search, "matches", len(resp.Items))
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetFilters returns the filter button menu
// @Summary List catalog filters
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.FilterButton
// @Router /api/v1/catalog/filters [get]
func HandleGetFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, domain.FilterButtons)
	}
}
