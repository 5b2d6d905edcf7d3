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

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a teacher with an empty classroom back-reference list
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	teacher := req.ToModel()
	if err := c.teacherService.CreateTeacher(ctx, teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// GetAllTeachers retrieves all teachers
// @Summary Get all teachers
// @Description Retrieves a list of all teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teachers,
		Timestamp: time.Now(),
	})
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Description Retrieves a specific teacher by its ID
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidObjectID)
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// DeleteTeacher deletes a teacher by ID
// @Summary Delete teacher
// @Description Removes a teacher; classrooms referencing the teacher are not cleaned up
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidObjectID)
		return
	}

	teacher, err := c.teacherService.DeleteTeacher(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}
