package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"bond-yield/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBonds(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "treasury_10y.yaml"), []byte(`
bond:
  name: "10Y 5% semi-annual"
  face_value: 1000
  coupon_rate: 5
  payments_per_year: 2
  years_to_maturity: 10
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "callable_8y.yaml"), []byte(`
bond:
  face_value: 1000
  coupon_rate: 6
  payments_per_year: 2
  years_to_maturity: 8
  years_to_call: 3
  call_price: 1000
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	t.Setenv("BOND_DIR", dir)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/bonds", NewBondHandler().ListBonds)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bonds", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bonds []models.BondInfo `json:"bonds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bonds, 2)

	byID := map[string]models.BondInfo{}
	for _, b := range resp.Bonds {
		byID[b.ID] = b
	}

	treasury, ok := byID["treasury_10y"]
	require.True(t, ok)
	assert.Equal(t, "10Y 5% semi-annual", treasury.Name)
	assert.Equal(t, 5.0, treasury.Specs.CouponRate)
	assert.False(t, treasury.Specs.Callable)

	callable, ok := byID["callable_8y"]
	require.True(t, ok)
	assert.Equal(t, "callable_8y", callable.Name, "falls back to the file ID")
	assert.True(t, callable.Specs.Callable)
}

func TestListBonds_MissingDirectory(t *testing.T) {
	t.Setenv("BOND_DIR", filepath.Join(t.TempDir(), "does-not-exist"))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/bonds", NewBondHandler().ListBonds)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bonds", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Missing directory is not an error: the list is just empty.
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bonds":[]}`, w.Body.String())
}
