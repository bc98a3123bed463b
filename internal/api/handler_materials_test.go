package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textile-market-backend/internal/model"
)

func getJSON(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListMaterials_EmptyIsBareArray(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := getJSON(router, "/api/materials")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListMaterials_InsertionOrder(t *testing.T) {
	router, st, _ := setupTestRouter(t)

	st.AppendMaterial(model.Material{ID: "MAT-00000001", Color: "Earthy Tones", Texture: "Denim"})
	st.AppendMaterial(model.Material{ID: "MAT-00000002", Color: "Vibrant Mix", Texture: "Silk Blend"})
	st.AppendMaterial(model.Material{ID: "MAT-00000003", Color: "Earthy Tones", Texture: "Cotton Canvas"})

	w := getJSON(router, "/api/materials")
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "MAT-00000001", list[0].ID)
	assert.Equal(t, "MAT-00000002", list[1].ID)
	assert.Equal(t, "MAT-00000003", list[2].ID)
}

func TestListMaterials_Filters(t *testing.T) {
	router, st, _ := setupTestRouter(t)

	st.AppendMaterial(model.Material{ID: "MAT-00000001", Color: "Earthy Tones", Texture: "Denim"})
	st.AppendMaterial(model.Material{ID: "MAT-00000002", Color: "Vibrant Mix", Texture: "Silk Blend"})
	st.AppendMaterial(model.Material{ID: "MAT-00000003", Color: "Earthy Tones", Texture: "Cotton Canvas"})

	var list []model.Material

	w := getJSON(router, "/api/materials?color=earthy")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = getJSON(router, "/api/materials?color=earthy&texture=denim")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "MAT-00000001", list[0].ID)

	w = getJSON(router, "/api/materials?texture=velvet")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListFactoryMaterials(t *testing.T) {
	router, st, _ := setupTestRouter(t)

	st.AppendMaterial(model.Material{ID: "MAT-00000001", FactoryID: "FAC-001"})
	st.AppendMaterial(model.Material{ID: "MAT-00000002", FactoryID: "FAC-042"})
	st.AppendMaterial(model.Material{ID: "MAT-00000003", FactoryID: "FAC-042"})

	var list []model.Material

	w := getJSON(router, "/api/factory/materials?factory_id=FAC-042")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "MAT-00000002", list[0].ID)
	assert.Equal(t, "MAT-00000003", list[1].ID)

	// Unspecified factory_id falls back to the default factory.
	w = getJSON(router, "/api/factory/materials")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "MAT-00000001", list[0].ID)

	w = getJSON(router, "/api/factory/materials?factory_id=FAC-999")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetMaterial(t *testing.T) {
	router, st, _ := setupTestRouter(t)

	st.AppendMaterial(model.Material{ID: "MAT-00000001", Filename: "shirt.jpg"})

	w := getJSON(router, "/api/materials/MAT-00000001")
	require.Equal(t, http.StatusOK, w.Code)

	var m model.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "shirt.jpg", m.Filename)

	w = getJSON(router, "/api/materials/MAT-MISSING1")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"material not found"}`, w.Body.String())
}
