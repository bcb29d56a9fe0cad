package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/domain"
)

func TestHandleGetCatalog(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedIDs    []string
	}{
		{"all", "", http.StatusOK, []string{"red-knife", "blue-pet", "bone-cleaver", "pebble"}},
		{"knives are collector knives", "?filter=knives", http.StatusOK, []string{"bone-cleaver"}},
		{"uppercase filter", "?filter=KNIVES", http.StatusOK, []string{"bone-cleaver"}},
		{"tier", "?filter=epic", http.StatusOK, []string{"red-knife"}},
		{"search", "?search=pet", http.StatusOK, []string{"blue-pet"}},
		{"search no match", "?search=zzz", http.StatusOK, []string{}},
		{"invalid filter", "?filter=swords", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog"+tt.query, nil)
			w := httptest.NewRecorder()

			HandleGetCatalog(cat).ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), ErrMsgInvalidFilter)
				return
			}

			var resp CatalogResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			ids := make([]string, 0, len(resp.Items))
			for _, item := range resp.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, 4, resp.Total)
			assert.Len(t, resp.FilterButtons, len(domain.FilterButtons))
		})
	}
}

func TestHandleGetCatalog_DisplayValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?search=blue", nil)
	w := httptest.NewRecorder()

	HandleGetCatalog(testCatalog()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2k", resp.Items[0]["display_value"])
	assert.Equal(t, float64(1500), resp.Items[0]["value"])
	assert.Equal(t, "Blue Pet", resp.Items[0]["name"])
}

func TestHandleGetFilters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/filters", nil)
	w := httptest.NewRecorder()

	HandleGetFilters().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var buttons []domain.FilterButton
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buttons))
	require.NotEmpty(t, buttons)
	assert.Equal(t, domain.FilterAll, buttons[0].Value)
	for _, b := range buttons {
		if b.Label == "Basic" {
			assert.Equal(t, domain.FilterUncommon, b.Value)
		}
	}
}
