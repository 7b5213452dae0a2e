package muscleexercise

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strength-api/internal/domain/shared"
	"strength-api/internal/handler/response"
	meuc "strength-api/internal/usecase/muscleexercise"
	"strength-api/internal/usecase/pipeline"
)

// CreateManyRequest описывает тело запроса массового создания связей:
// одно упражнение и список мышц, которые оно задействует.
type CreateManyRequest struct {
	ExerciseName        string   `json:"exerciseName" binding:"required"`
	ExerciseDescription string   `json:"exerciseDescription"`
	MuscleNames         []string `json:"muscleNames" binding:"required"`
}

// Handler обрабатывает HTTP-запросы, связанные со связями мышца-упражнение.
type Handler struct {
	createMany *pipeline.Pipeline[meuc.CreateManyCommand, shared.Unit]
}

// NewHandler создаёт новый MuscleExerciseHandler.
func NewHandler(createMany *pipeline.Pipeline[meuc.CreateManyCommand, shared.Unit]) *Handler {
	return &Handler{createMany: createMany}
}

// CreateMany обрабатывает массовое создание связей мышца-упражнение.
// Доступно только администратору.
//
//	@Summary	Создание связей мышца-упражнение
//	@Tags		muscle-exercise
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateManyRequest	true	"Упражнение и список мышц"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	400		{object}	response.ErrorDetails
//	@Failure	401		{object}	response.ErrorDetails
//	@Failure	403		{object}	response.ErrorDetails
//	@Security	BearerAuth
//	@Router		/api/muscle-exercise [post]
func (h *Handler) CreateMany(c *gin.Context) {
	var req CreateManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	cmd := meuc.CreateManyCommand{
		ExerciseName:        req.ExerciseName,
		ExerciseDescription: req.ExerciseDescription,
		MuscleNames:         req.MuscleNames,
	}

	result := h.createMany.Execute(c.Request.Context(), cmd)
	if result.IsFailure() {
		response.FromResult(c, result)
		return
	}

	response.Message(c, http.StatusOK, "muscles and exercise successfully created")
}
