package response

import "github.com/gin-gonic/gin"

// Message writes the API's plain {"message": ...} body. Error responses never
// carry stack traces or internal detail.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
