package tags

import (
	"github.com/gin-gonic/gin"
)

func SetupTagRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/gpt", controller.GenerateTags) // GET /api/gpt?title=&size= - Generate tags for a title
}
