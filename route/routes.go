package route

import (
	"github.com/gin-gonic/gin"

	"cafeapi/controller"
)

func CafeRoutes(router *gin.Engine, ctl *controller.CafeController) {
	router.POST("/add_cafe", ctl.AddCafe)
	router.GET("/cafes", ctl.GetCafes)
	router.GET("/cafes/export", ctl.ExportCafes)
	router.GET("/cafe/:name", ctl.GetCafeByName)
}
