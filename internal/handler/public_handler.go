package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/devfolio/internal/schema"
	"github.com/devfolio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 把叙述字段的 Markdown 渲染为净化后的 HTML。
func renderMarkdown(source string) template.HTML {
	if source == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.Sanitize(buf.String()))
}

// skillIconHTMLMap 把图标 SVG 包装为 template.HTML，模板里才能内联渲染。
// 图标集是代码内置的闭集，不经过用户输入。
func skillIconHTMLMap() map[string]template.HTML {
	svgs := view.SkillIconSVGMap()
	icons := make(map[string]template.HTML, len(svgs))
	for key, svg := range svgs {
		icons[key] = template.HTML(svg)
	}
	return icons
}

// ShowHome 渲染首页：精选项目与技能概览
func (a *API) ShowHome(c *gin.Context) {
	projects := a.projects.List()
	if len(projects) > 3 {
		projects = projects[:3]
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":    "首页",
		"projects": projects,
		"skills":   a.skills.List(),
		"icons":    skillIconHTMLMap(),
	})
}

// ShowProjects 渲染项目列表页
func (a *API) ShowProjects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"title":    "项目",
		"projects": a.projects.List(),
	})
}

// ShowProjectDetail 渲染项目详情页，未知 slug 走 404 页面
func (a *API) ShowProjectDetail(c *gin.Context) {
	slug := c.Param("slug")

	project := a.projects.GetBySlug(slug)
	if project == nil {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"title": "页面不存在"})
		return
	}

	c.HTML(http.StatusOK, "project_detail.html", gin.H{
		"title":        project.Title,
		"project":      project,
		"summary":      renderMarkdown(project.Summary),
		"challenge":    renderMarkdown(project.Challenge),
		"contribution": renderMarkdown(project.Contribution),
	})
}

// ShowExperience 渲染经历页
func (a *API) ShowExperience(c *gin.Context) {
	c.HTML(http.StatusOK, "experience.html", gin.H{
		"title":       "经历",
		"experiences": a.experiences.List(),
	})
}

// ShowCertificates 渲染证书页
func (a *API) ShowCertificates(c *gin.Context) {
	c.HTML(http.StatusOK, "certificates.html", gin.H{
		"title":        "证书",
		"certificates": a.certificates.List(),
	})
}

// ShowContact 渲染联系表单页
func (a *API) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":  "联系我",
		"values": schema.Values{},
	})
}

// SubmitContact 处理联系表单提交。
// 蜜罐字段 website 对人类不可见，被填写即按机器人丢弃，但仍展示成功页。
// 校验失败时回填已提交的值供用户修正。
func (a *API) SubmitContact(c *gin.Context) {
	values := schema.Values{
		"name":     c.PostForm("name"),
		"email":    c.PostForm("email"),
		"category": c.PostForm("category"),
		"budget":   c.PostForm("budget"),
		"message":  c.PostForm("message"),
	}
	honeypot := c.PostForm("website")

	_, verrs, err := a.messages.Submit(values, honeypot)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"title":  "联系我",
			"error":  "发送失败，请稍后重试",
			"values": values,
		})
		return
	}
	if len(verrs) > 0 {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"title":  "联系我",
			"errors": verrs,
			"values": values,
		})
		return
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":   "联系我",
		"success": true,
	})
}
