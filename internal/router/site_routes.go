package router

import (
	"net/http"

	"github.com/agnesederberg/Final-project-2/internal/handlers"
	"github.com/agnesederberg/Final-project-2/pkg/responses"

	"github.com/gin-gonic/gin"
)

// SiteRoutes registers the routes open to anonymous users.
func SiteRoutes(router *gin.Engine, authHandler *handlers.AuthHandler) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": responses.PopFlash(c)})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The GET routes serve the form pages: redirects after logout or a
	// password change land here, so they surface the pending flash.
	router.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": "login", "message": responses.PopFlash(c)})
	})
	router.GET("/register", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": "registration", "message": responses.PopFlash(c)})
	})

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
}

// ProfileRoutes registers the session-gated user routes. All mutations
// go through POST; nothing here mutates on GET.
func ProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	profile := rg.Group("/profile")
	{
		profile.GET("", profileHandler.GetProfile)
		profile.POST("", profileHandler.UpdateProfile)
		profile.POST("/password", profileHandler.UpdatePassword)
		profile.POST("/delete", profileHandler.DeleteAccount)
	}
}
