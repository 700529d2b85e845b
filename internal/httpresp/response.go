package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps collections (time slots, a day's consultations) so
// clients can read the count without walking the array.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created answers a confirmed booking.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// List never renders "data": null; an empty day is [].
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
