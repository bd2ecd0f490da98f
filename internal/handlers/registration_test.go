package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/handlers"
	"github.com/iedaejin/capstones-supervisors-form/internal/models"
	"github.com/iedaejin/capstones-supervisors-form/internal/registry"
	"github.com/iedaejin/capstones-supervisors-form/internal/store"
	"github.com/iedaejin/capstones-supervisors-form/internal/testhelpers"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testhelpers.NewTestLogger()
	records := store.New(filepath.Join(t.TempDir(), "supervisors.txt"), log)
	cat := catalog.New(map[string][]models.Topic{
		"BDBA": {
			{Number: 1, Description: "T01: Machine Learning"},
			{Number: 2, Description: "T02: Databases"},
			{Number: 3, Description: "T03: Supply Chains"},
		},
		"BCSAI": {
			{Number: 4, Description: "T04: Computer Vision"},
		},
	})
	provider := catalog.NewProvider("unused.xlsx", cat, log)
	pipeline := registry.New(records, provider, nil, log)
	handler := handlers.NewRegistrationHandler(pipeline, provider, records, log)

	router := gin.New()
	router.POST("/registrations", handler.Submit)
	router.GET("/registrations/stats", handler.Stats)
	router.GET("/catalog", handler.GetCatalog)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func validBody() map[string]any {
	return map[string]any{
		"name":     "Dr. Smith",
		"capacity": 5,
		"selections": []map[string]any{
			{
				"program": "BDBA",
				"topics": []map[string]any{
					{"number": 1, "expertise": "Expert"},
					{"number": 2, "expertise": "Advanced"},
					{"number": 3, "expertise": "Intermediate"},
				},
			},
		},
	}
}

func TestSubmit_Persisted(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/registrations", validBody())

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "persisted", resp["status"])
	assert.Equal(t, "Dr. Smith: 5, BDBA:BDBA_T01:Expert, BDBA:BDBA_T02:Advanced, BDBA:BDBA_T03:Intermediate", resp["record"])
}

func TestSubmit_DuplicateRejected(t *testing.T) {
	router := setupRouter(t)

	first := postJSON(t, router, "/registrations", validBody())
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/registrations", validBody())
	require.Equal(t, http.StatusUnprocessableEntity, second.Code)

	var resp struct {
		Status     string               `json:"status"`
		Rejections []registry.Rejection `json:"rejections"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "rejected", resp.Status)
	require.Len(t, resp.Rejections, 1)
	assert.Equal(t, registry.DuplicateSupervisor, resp.Rejections[0].Code)
}

func TestSubmit_RejectionsAreCollected(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/registrations", map[string]any{
		"name":     "  ",
		"capacity": 0,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Rejections []registry.Rejection `json:"rejections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, len(resp.Rejections), 3)
}

func TestSubmit_FewTopicsAdvisory(t *testing.T) {
	router := setupRouter(t)

	body := validBody()
	body["selections"] = []map[string]any{
		{
			"program": "BDBA",
			"topics": []map[string]any{
				{"number": 1, "expertise": "Expert"},
			},
		},
	}

	w := postJSON(t, router, "/registrations", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Advisories []string `json:"advisories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Advisories, 1)
	assert.Contains(t, resp.Advisories[0], "3-5 topics")
}

func TestSubmit_InvalidBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCatalog(t *testing.T) {
	router := setupRouter(t)

	w, resp := getJSON(t, router, "/catalog")
	require.Equal(t, http.StatusOK, w.Code)

	assert.InDelta(t, 4, resp["topics"], 0)

	programs, ok := resp["programs"].([]any)
	require.True(t, ok)
	require.Len(t, programs, 2)

	// Programs are sorted; BCSAI before BDBA.
	first, ok := programs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "BCSAI", first["program"])

	topics, ok := first["topics"].([]any)
	require.True(t, ok)
	require.Len(t, topics, 1)
	topic, ok := topics[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "BCSAI_T04", topic["id"])
}

func TestStats(t *testing.T) {
	router := setupRouter(t)

	w, resp := getJSON(t, router, "/registrations/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0, resp["supervisors"], 0)

	created := postJSON(t, router, "/registrations", validBody())
	require.Equal(t, http.StatusCreated, created.Code)

	w, resp = getJSON(t, router, "/registrations/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1, resp["supervisors"], 0)
	assert.InDelta(t, 2, resp["programs"], 0)
}
