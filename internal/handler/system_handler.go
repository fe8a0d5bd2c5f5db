package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HealthCheck 提供部署平台与监控系统使用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}

// RobotsTxt 返回爬虫策略：公开页面可抓取，后台路径整体禁止。
func (a *API) RobotsTxt(c *gin.Context) {
	base := strings.TrimRight(a.siteBaseURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /admin/\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML 列出全部公开路由，项目详情页按当前 slug 逐条展开。
func (a *API) SitemapXML(c *gin.Context) {
	base := strings.TrimRight(a.siteBaseURL, "/")

	urlset := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, path := range []string{"/", "/projects", "/experience", "/certificates", "/contact"} {
		urlset.URLs = append(urlset.URLs, sitemapURL{Loc: base + path})
	}
	for _, project := range a.projects.List() {
		urlset.URLs = append(urlset.URLs, sitemapURL{Loc: fmt.Sprintf("%s/projects/%s", base, project.Slug)})
	}

	body, err := xml.MarshalIndent(urlset, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
