package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/app/controllers"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/visitors"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	bookController *controllers.BookController,
	contentController *controllers.ContentController,
	visitorController *controllers.VisitorController,
	authMiddleware *middleware.AuthMiddleware,
	counter visitors.Counter,
	uploadsDir string,
	requestTimeout time.Duration,
) {
	router.Use(middleware.VisitorCount(counter))

	// Stored images are served straight from disk.
	router.Static("/uploads", uploadsDir)

	v1 := router.Group("/api/v1")

	// The streaming routes sit outside the timeout group; a video
	// transfer can legitimately outlive any fixed deadline.
	content := v1.Group("/content")
	{
		content.GET("/video/:filename", contentController.GetVideo)
		content.GET("/pdf/:filename", contentController.GetPdf)
		content.GET("/ppt/:filename", contentController.GetPpt)
	}

	api := v1.Group("")
	api.Use(middleware.RequestTimeout(requestTimeout))

	students := api.Group("/students")
	{
		students.POST("", studentController.AddStudent)
		students.POST("/import", studentController.ImportStudents)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	teachers := api.Group("/teachers")
	{
		teachers.POST("", teacherController.AddTeacher)
		teachers.POST("/import", teacherController.ImportTeachers)
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/names", teacherController.GetTeacherNames)
		teachers.GET("/departments", teacherController.GetDepartments)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	books := api.Group("/books")
	{
		books.POST("", bookController.AddBook)
		books.GET("", bookController.GetAllBooks)
		books.GET("/departments", bookController.GetDepartments)
		books.GET("/categories", bookController.GetCategories)
		books.GET("/department/:department", bookController.GetBooksByDepartment)
		books.GET("/category/:category", bookController.GetBooksByCategory)
		books.GET("/:id", bookController.GetBookByID)
		books.PATCH("/:id", bookController.UpdateBook)
		books.PATCH("/:id/field", bookController.UpdateBookField)
		books.DELETE("/:id", bookController.DeleteBook)
	}

	contentAPI := api.Group("/content")
	{
		contentAPI.POST("", contentController.AddContent)
		contentAPI.GET("", contentController.GetAllContent)
		contentAPI.GET("/teachers", contentController.GetContentWithTeacherNames)
		contentAPI.GET("/material-types", contentController.GetMaterialTypes)
		contentAPI.GET("/:id", contentController.GetContentByID)
		contentAPI.PATCH("/:id/field", contentController.UpdateContentField)
		contentAPI.DELETE("/:id", contentController.DeleteContent)
	}

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/students/login", authController.StudentLogin)
		authRoutes.POST("/teachers/login", authController.TeacherLogin)
		authRoutes.POST("/admins/login", authController.AdminLogin)
		authRoutes.POST("/admins/register", authController.RegisterAdmin)

		profile := authRoutes.Group("/profile")
		profile.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
		{
			profile.GET("", authController.GetProfile)
			profile.PUT("", authController.UpdateProfile)
		}
	}

	visitorRoutes := api.Group("/visitors")
	{
		visitorRoutes.GET("/count", visitorController.GetCount)
	}
}
