package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"textile-market-backend/internal/ident"
	"textile-market-backend/internal/model"
)

// UploadMaterial handles the POST /api/upload request: store the image,
// generate labels, append the material record and return it. A failed write
// appends nothing. No size or type validation is performed on the payload;
// presence of a named file part is the only requirement.
func (h *Handler) UploadMaterial(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file selected"})
		return
	}

	factoryID := c.DefaultPostForm("factory_id", model.DefaultFactoryID)
	factoryName := c.DefaultPostForm("factory_name", model.DefaultFactoryName)

	quantity, err := optionalFloat(c, "quantity")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}
	pricePerKG, err := optionalFloat(c, "price_per_kg")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_per_kg"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file payload"})
		return
	}
	defer src.Close()

	storedName, storedPath, err := h.files.Save(fileHeader.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	analysis := h.labeler.Label(storedPath)

	material := model.Material{
		ID:          ident.NewRecordID("MAT"),
		FactoryID:   factoryID,
		FactoryName: factoryName,
		Filename:    fileHeader.Filename,
		StoredPath:  storedPath,
		ImageURL:    "/uploads/" + storedName,
		Color:       analysis.Color,
		Texture:     analysis.Texture,
		Pattern:     analysis.Pattern,
		Quality:     analysis.Quality,
		QuantityKG:  quantity,
		PricePerKG:  pricePerKG,
		Status:      model.StatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.AppendMaterial(material)

	c.JSON(http.StatusCreated, material)
}

// optionalFloat parses a form field that may be absent; absent means zero.
func optionalFloat(c *gin.Context, field string) (float64, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
