package router

import (
	"path/filepath"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由。
// cfg.TemplateDir 为空时跳过模板加载，供只打 JSON 接口的测试使用。
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("devfolio_session", store))

	if cfg.TemplateDir != "" {
		r.LoadHTMLGlob(filepath.Join(cfg.TemplateDir, "*.html"))
	}

	// 静态文件与上传目录
	r.Static("/static", "./web/static")
	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	api := handler.NewAPI(db.DB, cfg.UploadDir, cfg.UploadURLPath, cfg.SiteBaseURL)

	// 公开路由
	r.GET("/", api.ShowHome)
	r.GET("/projects", api.ShowProjects)
	r.GET("/projects/:slug", api.ShowProjectDetail)
	r.GET("/experience", api.ShowExperience)
	r.GET("/certificates", api.ShowCertificates)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	r.GET("/healthz", api.HealthCheck)
	r.GET("/robots.txt", api.RobotsTxt)
	r.GET("/sitemap.xml", api.SitemapXML)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/projects", api.ShowProjectAdmin)
			auth.GET("/experiences", api.ShowExperienceAdmin)
			auth.GET("/skills", api.ShowSkillAdmin)
			auth.GET("/certificates", api.ShowCertificateAdmin)
			auth.GET("/messages", api.ShowMessageAdmin)

			// API路由
			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/projects", api.GetProjects)
				adminAPI.GET("/projects/:id", api.GetProject)
				adminAPI.POST("/projects", api.CreateProject)
				adminAPI.PUT("/projects/:id", api.UpdateProject)
				adminAPI.DELETE("/projects/:id", api.DeleteProject)

				adminAPI.GET("/experiences", api.GetExperiences)
				adminAPI.POST("/experiences", api.CreateExperience)
				adminAPI.PUT("/experiences/:id", api.UpdateExperience)
				adminAPI.DELETE("/experiences/:id", api.DeleteExperience)

				adminAPI.GET("/skills", api.GetSkills)
				adminAPI.POST("/skills", api.CreateSkill)
				adminAPI.PUT("/skills/:id", api.UpdateSkill)
				adminAPI.DELETE("/skills/:id", api.DeleteSkill)

				adminAPI.GET("/certificates", api.GetCertificates)
				adminAPI.POST("/certificates", api.CreateCertificate)
				adminAPI.PUT("/certificates/:id", api.UpdateCertificate)
				adminAPI.DELETE("/certificates/:id", api.DeleteCertificate)

				adminAPI.GET("/messages", api.GetMessages)
				adminAPI.PUT("/messages/:id", api.UpdateMessageStatus)
				adminAPI.DELETE("/messages/:id", api.DeleteMessage)

				adminAPI.POST("/uploads", api.UploadImage)
			}
		}
	}

	return r
}
