package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/controllers"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/middleware"
)

// SetupRouter configures all application routes. Each route is a short
// middleware chain: path-identifier validation where a path id exists, then
// the controller; the chain aborts at the first classified failure.
func SetupRouter(
	router *gin.Engine,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	classroomController *controllers.ClassroomController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Teacher routes
	teachers := v1.Group("/teachers")
	{
		teachers.POST("", teacherController.CreateTeacher)
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", middleware.RequireObjectID("id"), teacherController.GetTeacherByID)
		teachers.DELETE("/:id", middleware.RequireObjectID("id"), teacherController.DeleteTeacher)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", middleware.RequireObjectID("id"), studentController.GetStudentByID)
		students.DELETE("/:id", middleware.RequireObjectID("id"), studentController.DeleteStudent)
	}

	// Classroom routes, including classroom-owned quizzes
	classrooms := v1.Group("/classrooms")
	{
		classrooms.POST("", classroomController.CreateClassroom)
		classrooms.GET("", classroomController.GetAllClassrooms)
		classrooms.GET("/:id", middleware.RequireObjectID("id"), classroomController.GetClassroomByID)
		classrooms.DELETE("/:id", middleware.RequireObjectID("id"), classroomController.DeleteClassroom)
		classrooms.POST("/:id/quizzes", middleware.RequireObjectID("id"), classroomController.CreateQuiz)
		classrooms.GET("/:id/quizzes", middleware.RequireObjectID("id"), classroomController.GetQuizHistory)
	}
}
