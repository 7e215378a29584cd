package response

import "github.com/gin-gonic/gin"

// ErrorBody is the shape of every error the API writes. Message is the
// human-readable part; Code and Details are for clients that branch on them.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Success writes data as the whole body: a record, a list page or a token.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Message writes a data-less confirmation such as a delete acknowledgement.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"message": msg})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, ErrorBody{
		Message: message,
		Code:    code,
		Details: details,
	})
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}
