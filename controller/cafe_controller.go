package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"cafeapi/model"
	"cafeapi/store"
)

type CafeController struct {
	store store.Store
}

func NewCafeController(s store.Store) *CafeController {
	return &CafeController{store: s}
}

// addCafeRequest carries every cafe field except the id. The booleans bind
// through pointers so a missing field is distinguishable from false.
type addCafeRequest struct {
	Name         string `json:"name" binding:"required"`
	MapURL       string `json:"map_url" binding:"required"`
	ImgURL       string `json:"img_url" binding:"required"`
	Location     string `json:"location" binding:"required"`
	HasSockets   *bool  `json:"has_sockets" binding:"required"`
	HasToilet    *bool  `json:"has_toilet" binding:"required"`
	HasWifi      *bool  `json:"has_wifi" binding:"required"`
	CanTakeCalls *bool  `json:"can_take_calls" binding:"required"`
	Seats        string `json:"seats"`
	CoffeePrice  string `json:"coffee_price"`
}

func (ctl *CafeController) AddCafe(c *gin.Context) {
	var req addCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"Bad Request": "Missing or invalid required fields."},
		})
		return
	}

	cafe := model.Cafe{
		Name:         req.Name,
		MapURL:       req.MapURL,
		ImgURL:       req.ImgURL,
		Location:     req.Location,
		HasSockets:   *req.HasSockets,
		HasToilet:    *req.HasToilet,
		HasWifi:      *req.HasWifi,
		CanTakeCalls: *req.CanTakeCalls,
		Seats:        req.Seats,
		CoffeePrice:  req.CoffeePrice,
	}

	if err := ctl.store.Add(&cafe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"Internal Server Error": "Failed to save the new cafe."},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully added the new cafe."},
	})
}

func (ctl *CafeController) GetCafes(c *gin.Context) {
	cafes, err := ctl.store.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"Internal Server Error": "Failed to fetch cafes."},
		})
		return
	}

	c.JSON(http.StatusOK, cafes)
}

func (ctl *CafeController) GetCafeByName(c *gin.Context) {
	name := c.Param("name")

	cafe, err := ctl.store.FindByName(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{"Not Found": "Sorry, we don't have a cafe with that name."},
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"Internal Server Error": "Failed to fetch cafe."},
			})
		}
		return
	}

	c.JSON(http.StatusOK, cafe)
}

// ExportCafes streams the full cafe list as an xlsx workbook.
func (ctl *CafeController) ExportCafes(c *gin.Context) {
	cafes, err := ctl.store.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"Internal Server Error": "Failed to fetch cafes."},
		})
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	header := []any{
		"id", "name", "map_url", "img_url", "location",
		"has_sockets", "has_toilet", "has_wifi", "can_take_calls",
		"seats", "coffee_price",
	}
	if err := xl.SetSheetRow("Sheet1", "A1", &header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"Internal Server Error": "Failed to build export file."},
		})
		return
	}

	for i, cafe := range cafes {
		row := []any{
			cafe.ID, cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location,
			cafe.HasSockets, cafe.HasToilet, cafe.HasWifi, cafe.CanTakeCalls,
			cafe.Seats, cafe.CoffeePrice,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := xl.SetSheetRow("Sheet1", cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"Internal Server Error": "Failed to build export file."},
			})
			return
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"Internal Server Error": "Failed to build export file."},
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cafes.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
