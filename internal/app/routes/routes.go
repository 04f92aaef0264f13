package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanish/hostelhub/internal/app/controllers"
	"github.com/tanish/hostelhub/internal/middleware"
)

// SetupRouter configures all application routes. The legacy top-level paths
// are kept for existing clients; the same handlers are also exposed under
// the /api group.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	hostelController *controllers.HostelController,
	complaintController *controllers.ComplaintController,
	foodRequestController *controllers.FoodRequestController,
	lostItemController *controllers.LostItemController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	register := func(g *gin.RouterGroup) {
		// --- Public routes ---
		g.POST("/createWarden", authController.RegisterWarden)
		g.POST("/createStudent", authController.RegisterStudent)
		g.POST("/createSupportAdmin", authController.RegisterSupportAdmin)
		g.POST("/createHostel", hostelController.CreateHostel)
		g.POST("/loginWarden", authController.LoginWarden)
		g.POST("/loginStudent", authController.LoginStudent)
		g.POST("/loginSupportAdmin", authController.LoginSupportAdmin)

		// --- Student routes ---
		student := g.Group("")
		student.Use(authMiddleware.StudentAuth())
		{
			student.POST("/complaint", complaintController.File)
			student.GET("/complaint/:roll_no", complaintController.ListMine)
			student.POST("/foodrequest", foodRequestController.File)
			student.GET("/foodrequest/student", foodRequestController.ListMine)
			student.POST("/lostfound", lostItemController.Report)
			student.GET("/lostfound", lostItemController.List)
		}

		// --- Support department routes ---
		support := g.Group("")
		support.Use(authMiddleware.SupportAuth())
		{
			support.GET("/department-complaints", complaintController.ListForDepartment)
			support.PATCH("/complaint/:complaint_id/status", complaintController.UpdateStatus)
		}

		// --- Warden routes ---
		warden := g.Group("")
		warden.Use(authMiddleware.WardenAuth())
		{
			warden.GET("/foodrequests", foodRequestController.ListForWarden)
			warden.PATCH("/foodrequest/:food_id/status", foodRequestController.UpdateStatus)
			// legacy alias kept from the first client release
			warden.PATCH("/update-status/:food_id", foodRequestController.UpdateStatus)
			warden.GET("/lostfound/all", lostItemController.List)
			warden.PATCH("/lostfound/:item_id/status", lostItemController.UpdateStatus)
		}
	}

	register(router.Group(""))
	register(router.Group("/api"))
}
