package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models/dto"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/services"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/middleware"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// ClassroomController handles classroom-related operations
type ClassroomController struct {
	classroomService *services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService *services.ClassroomService) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
	}
}

// CreateClassroom handles classroom creation
// @Summary Create a new classroom
// @Description Creates a classroom referencing an existing teacher and zero or more students; back-references are propagated asynchronously
// @Tags classrooms
// @Accept json
// @Produce json
// @Param request body dto.CreateClassroomRequest true "Classroom information"
// @Success 201 {object} dto.APIResponse{data=models.Classroom} "Classroom created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	classroom := req.ToModel()
	if err := c.classroomService.CreateClassroom(ctx, classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// GetAllClassrooms retrieves all classrooms
// @Summary Get all classrooms
// @Description Retrieves a list of all classrooms
// @Tags classrooms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom} "Classrooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms [get]
func (c *ClassroomController) GetAllClassrooms(ctx *gin.Context) {
	classrooms, err := c.classroomService.GetAllClassrooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classrooms,
		Timestamp: time.Now(),
	})
}

// GetClassroomByID retrieves a classroom by ID
// @Summary Get classroom by ID
// @Description Retrieves a specific classroom by its ID
// @Tags classrooms
// @Produce json
// @Param id path string true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroomByID(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidObjectID)
		return
	}

	classroom, err := c.classroomService.GetClassroomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// DeleteClassroom deletes a classroom by ID
// @Summary Delete classroom
// @Description Removes a classroom; teacher and student back-references are not cleaned up
// @Tags classrooms
// @Produce json
// @Param id path string true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [delete]
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidObjectID)
		return
	}

	classroom, err := c.classroomService.DeleteClassroom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// CreateQuiz creates a quiz for a classroom
// @Summary Create a classroom quiz
// @Description Creates a quiz and appends it to the classroom's quiz history; fails without creating a quiz when the classroom does not exist
// @Tags classrooms
// @Accept json
// @Produce json
// @Param id path string true "Classroom ID"
// @Param request body dto.CreateQuizRequest true "Quiz information"
// @Success 201 {object} dto.APIResponse{data=models.Quiz} "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id}/quizzes [post]
func (c *ClassroomController) CreateQuiz(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidObjectID)
		return
	}

	var req dto.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	quiz := req.ToModel()
	if err := c.classroomService.AttachQuiz(ctx, id, quiz); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      quiz,
		Timestamp: time.Now(),
	})
}

// GetQuizHistory retrieves all quizzes of a classroom
// @Summary Get classroom quiz history
// @Description Retrieves the classroom's quizzes in attachment order
// @Tags classrooms
// @Produce json
// @Param id path string true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Quiz} "Quiz history retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id}/quizzes [get]
func (c *ClassroomController) GetQuizHistory(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidObjectID)
		return
	}

	quizzes, err := c.classroomService.GetQuizHistory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      quizzes,
		Timestamp: time.Now(),
	})
}
