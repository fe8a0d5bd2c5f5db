package main

import (
	"fmt"
	"log"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/joho/godotenv"
)

// 示例内容生成器：给空库填一套可浏览的作品集数据
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成示例内容...")

	createSampleProjects()
	createSampleExperiences()
	createSampleSkills()
	createSampleCertificates()

	fmt.Println("示例内容生成完成！")
}

func createSampleProjects() {
	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count > 0 {
		fmt.Println("项目已存在，跳过创建")
		return
	}

	projects := []db.Project{
		{
			Slug:         "devfolio",
			Title:        "Devfolio 作品集",
			Description:  "用 Go + Gin 搭建的个人作品集网站，内置后台内容管理。",
			Summary:      "## 概述\n\n一个自托管的作品集站点，公开页面全部走带标签失效的内存缓存。",
			Challenge:    "## 挑战\n\n在不引入外部缓存服务的前提下保证控制台改动即时可见。",
			Contribution: "## 我的工作\n\n- 设计按标签失效的缓存层\n- 实现表单校验与后台 CRUD\n- 编写端到端测试",
			KeyFeatures:  db.StringList{"标签失效缓存", "Markdown 叙述渲染", "蜜罐反垃圾"},
			Category:     "Web",
			TechStack:    db.StringList{"Go", "Gin", "GORM", "SQLite"},
			RepoURL:      "https://github.com/devfolio/devfolio",
			SortOrder:    1,
		},
		{
			Slug:        "task-runner",
			Title:       "分布式任务调度器",
			Description: "支持重试与优先级队列的轻量任务调度服务。",
			TechStack:   db.StringList{"Go", "Redis", "PostgreSQL"},
			SortOrder:   2,
		},
		{
			Slug:        "log-pipe",
			Title:       "日志采集管道",
			Description: "从边缘节点聚合日志并做结构化入库的采集组件。",
			TechStack:   db.StringList{"Go", "Kafka", "ClickHouse"},
			SortOrder:   3,
		},
	}

	for i := range projects {
		if err := db.DB.Create(&projects[i]).Error; err != nil {
			log.Printf("创建项目失败: %v", err)
		}
	}

	fmt.Println("✅ 示例项目创建完成")
}

func createSampleExperiences() {
	var count int64
	db.DB.Model(&db.Experience{}).Count(&count)
	if count > 0 {
		fmt.Println("经历已存在，跳过创建")
		return
	}

	experiences := []db.Experience{
		{Position: "高级后端工程师", Company: "示例科技", Period: "2023 - 至今", Description: "负责核心服务的架构设计与性能优化。", SortOrder: 1},
		{Position: "后端工程师", Company: "起点网络", Period: "2020 - 2023", Description: "参与交易系统的开发与维护。", SortOrder: 2},
	}

	for i := range experiences {
		if err := db.DB.Create(&experiences[i]).Error; err != nil {
			log.Printf("创建经历失败: %v", err)
		}
	}

	fmt.Println("✅ 示例经历创建完成")
}

func createSampleSkills() {
	var count int64
	db.DB.Model(&db.Skill{}).Count(&count)
	if count > 0 {
		fmt.Println("技能已存在，跳过创建")
		return
	}

	skills := []db.Skill{
		{Name: "Go", Category: "后端", IconKey: "golang"},
		{Name: "React", Category: "前端", IconKey: "react"},
		{Name: "TypeScript", Category: "前端", IconKey: "typescript"},
		{Name: "Docker", Category: "运维", IconKey: "docker"},
		{Name: "PostgreSQL", Category: "数据", IconKey: "database"},
	}

	for i := range skills {
		if err := db.DB.Create(&skills[i]).Error; err != nil {
			log.Printf("创建技能失败: %v", err)
		}
	}

	fmt.Println("✅ 示例技能创建完成")
}

func createSampleCertificates() {
	var count int64
	db.DB.Model(&db.Certificate{}).Count(&count)
	if count > 0 {
		fmt.Println("证书已存在，跳过创建")
		return
	}

	certificates := []db.Certificate{
		{Name: "CKA", Issuer: "CNCF", IssuedAt: "2024-06-01"},
		{Name: "AWS Certified Developer", Issuer: "Amazon Web Services", IssuedAt: "2023-11-20"},
	}

	for i := range certificates {
		if err := db.DB.Create(&certificates[i]).Error; err != nil {
			log.Printf("创建证书失败: %v", err)
		}
	}

	fmt.Println("✅ 示例证书创建完成")
}
