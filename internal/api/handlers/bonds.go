package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"bond-yield/internal/api/models"
	"bond-yield/internal/config"

	"github.com/gin-gonic/gin"
)

// BondHandler handles bond-preset requests
type BondHandler struct {
	bondDir string
}

// NewBondHandler creates a new bond handler
func NewBondHandler() *BondHandler {
	dir := bondDir()
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	log.Printf("BondHandler: using bond directory: %s", dir)
	return &BondHandler{bondDir: dir}
}

// GetBondDir returns the bond directory path (for debugging)
func (h *BondHandler) GetBondDir() string {
	return h.bondDir
}

// ListBonds handles GET /api/v1/bonds
func (h *BondHandler) ListBonds(c *gin.Context) {
	bonds := []models.BondInfo{}

	entries, err := os.ReadDir(h.bondDir)
	if err != nil {
		log.Printf("BondHandler: failed to read bond directory %s: %v", h.bondDir, err)
		c.JSON(http.StatusOK, gin.H{"bonds": bonds})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.bondDir, entry.Name())
		info, err := h.loadBondInfo(path, entry.Name())
		if err != nil {
			log.Printf("BondHandler: failed to load bond file %s: %v", path, err)
			continue // Skip invalid files
		}
		bonds = append(bonds, *info)
	}

	c.JSON(http.StatusOK, gin.H{"bonds": bonds})
}

func (h *BondHandler) loadBondInfo(path, filename string) (*models.BondInfo, error) {
	b, err := config.LoadBondFile(path)
	if err != nil {
		return nil, err
	}

	// Extract ID from filename (e.g., "treasury_10y.yaml" -> "treasury_10y")
	id := strings.TrimSuffix(filename, ".yaml")

	name := b.Name
	if name == "" {
		name = id
	}

	terms := b.ToModelTerms()
	return &models.BondInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.BondSpecs{
			FaceValue:       b.FaceValue,
			CouponRate:      b.CouponRate,
			PaymentsPerYear: b.PaymentsPerYear,
			YearsToMaturity: b.YearsToMaturity,
			Callable:        terms.Callable(),
		},
	}, nil
}
