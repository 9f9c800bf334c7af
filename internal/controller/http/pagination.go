package http

import (
	"strconv"

	"github.com/jpviradiya/iTube/internal/entity"

	"github.com/gin-gonic/gin"
)

// pageParamsFromQuery reads the shared listing query parameters.
// Malformed numbers fall through as zero and get clamped by
// Normalize in the usecase.
func pageParamsFromQuery(c *gin.Context) entity.PageParams {
	params := entity.PageParams{
		Query:   c.Query("query"),
		SortBy:  c.Query("sortBy"),
		OwnerID: c.Query("userId"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		params.Limit = limit
	}
	if c.Query("sortType") == "asc" {
		params.SortOrder = entity.SortAsc
	} else {
		params.SortOrder = entity.SortDesc
	}
	return params
}

// pagedData wraps a result slice with its page metadata.
func pagedData(key string, items interface{}, meta entity.PageMeta) gin.H {
	return gin.H{
		key:          items,
		"total":      meta.Total,
		"page":       meta.Page,
		"limit":      meta.Limit,
		"totalPages": meta.TotalPages,
	}
}
