package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/visitors"
)

// VisitorController exposes the visitor counter
type VisitorController struct {
	counter visitors.Counter
}

// NewVisitorController creates a new VisitorController
func NewVisitorController(counter visitors.Counter) *VisitorController {
	return &VisitorController{
		counter: counter,
	}
}

// GetCount returns the running visitor total
func (c *VisitorController) GetCount(ctx *gin.Context) {
	count, err := c.counter.Count(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.VisitorCountResponse{Count: count}))
}
