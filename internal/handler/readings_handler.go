package handler

import (
	"net/http"

	"grainmarket-be/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) WriteReading(c *gin.Context) {
	subjectID, ok := pathID(c, "subject")
	if !ok {
		return
	}

	var req WriteReadingRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	err := h.ReadingsSvc.Write(c.Request.Context(), subjectID, req.Humidity, req.MoistureContent, req.StorageConditions)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.ReadingsWritten.Inc()
	c.Status(http.StatusNoContent)
}

func (h *Handler) ReadReading(c *gin.Context) {
	subjectID, ok := pathID(c, "subject")
	if !ok {
		return
	}

	reading, err := h.ReadingsSvc.Read(c.Request.Context(), subjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReadingResponse(reading))
}

func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Metrics.Snapshot())
}
