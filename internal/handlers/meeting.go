package handlers

import (
	"net/http"

	scheduler "github.com/TudorHulban/meetings"
	"github.com/TudorHulban/meetings/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MeetingHandler struct {
	query  *scheduler.FindMeetingQuery
	logger *zap.Logger
}

type ParamsNewMeetingHandler struct {
	Query  *scheduler.FindMeetingQuery
	Logger *zap.Logger
}

func NewMeetingHandler(params *ParamsNewMeetingHandler) *MeetingHandler {
	result := MeetingHandler{
		query:  params.Query,
		logger: params.Logger,
	}

	if result.logger == nil {
		result.logger = zap.NewNop()
	}

	if result.query == nil {
		result.query = scheduler.NewFindMeetingQuery(
			&scheduler.ParamsNewFindMeetingQuery{
				Logger: result.logger,
			},
		)
	}

	return &result
}

// RegisterRoutes registers the meeting endpoints.
func (h *MeetingHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/meetings")
	{
		api.POST("/query", h.Query)
	}
}

func (h *MeetingHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Query answers with the available slots for the posted events and request.
func (h *MeetingHandler) Query(c *gin.Context) {
	logger := h.logger.With(
		zap.String("requestID", c.GetString(middleware.KeyRequestID)),
	)

	var body QueryRequestDTO

	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		logger.Info("invalid query body", zap.Error(errBind))

		c.JSON(http.StatusBadRequest, gin.H{"error": errBind.Error()})

		return
	}

	events, request, errConvert := body.toDomain()
	if errConvert != nil {
		logger.Info("invalid query input", zap.Error(errConvert))

		c.JSON(http.StatusBadRequest, gin.H{"error": errConvert.Error()})

		return
	}

	response, errQuery := h.query.QueryDetailed(events, request)
	if errQuery != nil {
		logger.Info("no meeting request", zap.Error(errQuery))

		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid meeting request"})

		return
	}

	slots := make([]SlotDTO, 0, len(response.Selected))

	for _, span := range response.Selected {
		slots = append(slots, toSlotDTO(span))
	}

	logger.Debug(
		"meeting query answered",

		zap.Int("slots", len(slots)),
		zap.String("selected", string(response.SelectedIs)),
	)

	c.JSON(
		http.StatusOK,
		QueryResponseDTO{
			Slots:    slots,
			Selected: string(response.SelectedIs),
		},
	)
}
