package response

import "github.com/gin-gonic/gin"

// RespondTags writes a successful tag payload
func RespondTags(c *gin.Context, code int, tags string) {
	c.JSON(code, TagApiResponse{
		Success: true,
		Tags:    &tags,
	})
}

// RespondError writes a failure payload and stops the handler chain
func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, TagApiResponse{
		Success: false,
		Error:   message,
	})
}
