package muscle

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"strength-api/internal/domain/shared"
	"strength-api/internal/handler/response"
	muscleuc "strength-api/internal/usecase/muscle"
	"strength-api/internal/usecase/pipeline"
)

// UpdateRequest описывает тело запроса переименования мышцы.
type UpdateRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"required"`
}

// Handler обрабатывает HTTP-запросы, связанные с мышцами.
type Handler struct {
	update *pipeline.Pipeline[muscleuc.UpdateMuscleCommand, shared.Unit]
}

// NewHandler создаёт новый MuscleHandler.
func NewHandler(update *pipeline.Pipeline[muscleuc.UpdateMuscleCommand, shared.Unit]) *Handler {
	return &Handler{update: update}
}

// Update обрабатывает переименование мышцы. Доступно только администратору.
//
//	@Summary	Переименование мышцы
//	@Tags		muscle
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateRequest	true	"Идентификатор и новое имя"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	400		{object}	response.ErrorDetails
//	@Failure	401		{object}	response.ErrorDetails
//	@Failure	403		{object}	response.ErrorDetails
//	@Security	BearerAuth
//	@Router		/api/muscle [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	cmd := muscleuc.UpdateMuscleCommand{
		ID:   req.ID,
		Name: req.Name,
	}

	result := h.update.Execute(c.Request.Context(), cmd)
	if result.IsFailure() {
		response.FromResult(c, result)
		return
	}

	response.Message(c, http.StatusOK, "Muscle successfully updated")
}
