package http

import (
	"net/http"

	"github.com/jpviradiya/iTube/internal/entity"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with, success or
// failure. Success is derived from the status code so the two can
// never disagree.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	})
}

func respondError(c *gin.Context, err error) {
	apiErr := entity.AsAPIError(err)
	details := apiErr.Details
	if details == nil {
		details = []string{}
	}
	c.JSON(apiErr.Status, Response{
		StatusCode: apiErr.Status,
		Data:       nil,
		Message:    apiErr.Message,
		Success:    false,
		Errors:     details,
	})
}
