package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"solar-feasibility/internal/api/models"
	"solar-feasibility/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog, err := data.NewCatalog(data.DefaultLocations())
	require.NoError(t, err)

	r := gin.New()
	v1 := r.Group("/api/v1")

	simulateHandler := NewSimulateHandler(catalog)
	ratesHandler := NewRatesHandler()
	catalogHandler := NewCatalogHandler(catalog)
	rankHandler := NewRankHandler(catalog)

	v1.POST("/simulate", simulateHandler.RunSimulation)
	v1.POST("/rates/blend", ratesHandler.BlendRates)
	v1.GET("/locations", catalogHandler.ListLocations)
	v1.GET("/modules", catalogHandler.ListModuleTypes)
	v1.GET("/arrays", catalogHandler.ListArrayTypes)
	v1.GET("/rank", rankHandler.RankLocations)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRunSimulation_Synthetic(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{
			LocationID:  "johannesburg",
			ModuleType:  "standard",
			ArrayType:   "fixed_roof",
			CapacityKWp: 100,
			TiltDeg:     26,
		},
		Options: models.SimulateOptions{IncludeLedger: true},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "SYNTHETIC", resp.Summary.Source)
	assert.Equal(t, "johannesburg", resp.Summary.LocationID)
	assert.InDelta(t, 383.8, resp.Summary.DailyKWh, 0.5)
	assert.InDelta(t, resp.Summary.DailyKWh*365, resp.Summary.AnnualKWh, 1e-6)
	require.Len(t, resp.Profile, 24)
	require.Len(t, resp.Ledger, 24)
	assert.Equal(t, resp.Profile[12], resp.Ledger[12].EnergyKWh)
}

func TestRunSimulation_LedgerOmittedByDefault(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{
			LocationID:  "upington",
			ModuleType:  "standard",
			ArrayType:   "fixed_ground",
			CapacityKWp: 50,
			TiltDeg:     28,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Ledger)
	require.Len(t, resp.Profile, 24)
}

func TestRunSimulation_Errors(t *testing.T) {
	r := testRouter(t)

	// Unknown location.
	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{
			LocationID:  "atlantis",
			ModuleType:  "standard",
			ArrayType:   "fixed_roof",
			CapacityKWp: 100,
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_LOCATION", decodeError(t, w).Error.Code)

	// Missing capacity.
	w = postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{
			LocationID: "johannesburg",
			ModuleType: "standard",
			ArrayType:  "fixed_roof",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SYSTEM", decodeError(t, w).Error.Code)

	// Malformed body.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
}

func TestRunSimulation_Preset(t *testing.T) {
	dir := t.TempDir()
	preset := []byte(`
system:
  name: preset ground mount
  location_id: upington
  module_type: premium
  array_type: fixed_ground
  capacity_kwp: 500
  tilt_deg: 28
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ground.yaml"), preset, 0o644))
	t.Setenv("PRESET_DIR", dir)

	r := testRouter(t)

	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{
			SystemFile:  "ground",
			CapacityKWp: 750, // override the preset
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upington", resp.Summary.LocationID)
	assert.Equal(t, 750.0, resp.Summary.CapacityKWp)

	// Unknown preset name.
	w = postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{SystemFile: "nonexistent", CapacityKWp: 10},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SYSTEM", decodeError(t, w).Error.Code)
}

func TestRunSimulation_ForecastUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	t.Setenv("FORECAST_BASE_URL", srv.URL)

	r := testRouter(t)

	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		System: models.SystemSpec{
			LocationID:  "johannesburg",
			ModuleType:  "standard",
			ArrayType:   "fixed_roof",
			CapacityKWp: 100,
			TiltDeg:     26,
		},
		Forecast: &models.ForecastSpec{
			APIKey:    "bad-key",
			StartDate: "2026-08-01",
			EndDate:   "2026-08-08",
		},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_API_KEY", decodeError(t, w).Error.Code)
}

func TestBlendRates(t *testing.T) {
	r := testRouter(t)

	body := map[string]any{
		"tariff": map[string]any{
			"name": "Test TOU",
			"rates": []map[string]any{
				{"season_label": "High demand season", "period_label": "Peak", "energy_charge": 3},
				{"season_label": "High demand season", "period_label": "Standard", "energy_charge": 2},
				{"season_label": "High demand season", "period_label": "Off-Peak", "energy_charge": 1},
				{"season_label": "Low demand season", "period_label": "Peak", "energy_charge": 1.5},
				{"season_label": "Low demand season", "period_label": "Standard", "energy_charge": 1},
				{"season_label": "Low demand season", "period_label": "Off-Peak", "energy_charge": 0.5},
			},
		},
	}
	w := postJSON(t, r, "/api/v1/rates/blend", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BlendRatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test TOU", resp.TariffName)
	assert.False(t, resp.InclVAT)
	assert.Empty(t, resp.MissingSlots)
	assert.InDelta(t, 3768.0/2208.0, resp.Rates.AllHours.High, 1e-9)
	assert.InDelta(t, 2644.0/2190.0, resp.Rates.SolarHours.Annual, 1e-9)
}

func TestBlendRates_IncompleteTariff(t *testing.T) {
	r := testRouter(t)

	partial := map[string]any{
		"tariff": map[string]any{
			"name": "Partial",
			"rates": []map[string]any{
				{"season_label": "High demand season", "period_label": "Peak", "energy_charge": 3},
			},
		},
	}

	// Lenient by default: missing slots are reported, not fatal.
	w := postJSON(t, r, "/api/v1/rates/blend", partial)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.BlendRatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.MissingSlots, 5)

	// Strict mode rejects.
	partial["strict"] = true
	w = postJSON(t, r, "/api/v1/rates/blend", partial)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errResp := decodeError(t, w)
	assert.Equal(t, "INCOMPLETE_TARIFF", errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "missing_slots")
}

func TestBlendRates_InvalidTariff(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/api/v1/rates/blend", map[string]any{
		"tariff": map[string]any{
			"name": "Broken",
			"rates": []map[string]any{
				{"season_label": "Low-High Transition", "period_label": "Peak", "energy_charge": 3},
			},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TARIFF", decodeError(t, w).Error.Code)
}

func TestListCatalogs(t *testing.T) {
	r := testRouter(t)

	w := getPath(t, r, "/api/v1/locations")
	require.Equal(t, http.StatusOK, w.Code)
	var locResp struct {
		Locations []models.LocationInfo `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locResp))
	require.Len(t, locResp.Locations, 10)
	assert.Equal(t, "johannesburg", locResp.Locations[0].ID)

	w = getPath(t, r, "/api/v1/modules")
	require.Equal(t, http.StatusOK, w.Code)
	var modResp struct {
		Modules []models.ModuleTypeInfo `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &modResp))
	require.Len(t, modResp.Modules, 4)

	w = getPath(t, r, "/api/v1/arrays")
	require.Equal(t, http.StatusOK, w.Code)
	var arrResp struct {
		Arrays []models.ArrayTypeInfo `json:"arrays"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &arrResp))
	require.Len(t, arrResp.Arrays, 4)
}

func TestRankLocations(t *testing.T) {
	r := testRouter(t)

	w := getPath(t, r, "/api/v1/rank?capacity_kwp=100&limit=3")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.RankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rankings, 3)
	assert.Equal(t, 1, resp.Rankings[0].Rank)
	assert.Equal(t, "upington", resp.Rankings[0].LocationID)
	assert.GreaterOrEqual(t, resp.Rankings[0].AnnualKWh, resp.Rankings[1].AnnualKWh)
}

func TestRankLocations_Errors(t *testing.T) {
	r := testRouter(t)

	w := getPath(t, r, "/api/v1/rank")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getPath(t, r, "/api/v1/rank?capacity_kwp=100&module_type=fusion")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_MODULE_TYPE", decodeError(t, w).Error.Code)

	w = getPath(t, r, "/api/v1/rank?capacity_kwp=100&array_type=hovering")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_ARRAY_TYPE", decodeError(t, w).Error.Code)
}
