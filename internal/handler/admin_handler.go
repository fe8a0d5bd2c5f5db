package handler

import (
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "管理员登录",
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "会话保存失败"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var projectCount, experienceCount, skillCount, certificateCount, pendingMessages int64
	a.db.Model(&db.Project{}).Count(&projectCount)
	a.db.Model(&db.Experience{}).Count(&experienceCount)
	a.db.Model(&db.Skill{}).Count(&skillCount)
	a.db.Model(&db.Certificate{}).Count(&certificateCount)
	a.db.Model(&db.Message{}).Where("status = ?", db.MessageStatusPending).Count(&pendingMessages)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":            "管理面板",
		"username":         username,
		"projectCount":     projectCount,
		"experienceCount":  experienceCount,
		"skillCount":       skillCount,
		"certificateCount": certificateCount,
		"pendingMessages":  pendingMessages,
	})
}

// AuthRequired 是后台路由的认证中间件。
// 每次导航都询问会话，没有有效会话时在渲染任何后台内容前重定向到登录页。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
