package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"interview_prep_client/internal/app"
	"interview_prep_client/internal/config"
	"interview_prep_client/pkg/logger"
)

func main() {
	// 命令行参数
	cmd := flag.String("cmd", "", "要执行的命令：register/login/logout/whoami/categories/knowledge/knowledge-get/graph/exercises/exercise-get/submit/wrong/progress/progress-update/stats/user-get/user-update")
	email := flag.String("email", "", "邮箱")
	password := flag.String("password", "", "密码")
	username := flag.String("username", "", "用户名")
	avatar := flag.String("avatar", "", "头像地址")
	id := flag.Uint("id", 0, "资源 id")
	page := flag.Int("page", 0, "页码")
	pageSize := flag.Int("page-size", 0, "每页条数")
	categoryID := flag.Uint("category", 0, "分类 id 过滤")
	knowledgeID := flag.Uint("knowledge", 0, "知识点 id 过滤")
	difficulty := flag.String("difficulty", "", "难度过滤：easy/medium/hard")
	frequency := flag.String("frequency", "", "考察频率过滤：high/medium/low")
	search := flag.String("search", "", "标题搜索")
	answer := flag.String("answer", "", "提交的答案，逗号分隔，如 A,C")
	status := flag.String("status", "", "进度状态：not_started/in_progress/completed")
	mastery := flag.Int("mastery", 0, "掌握度 0-100")
	flag.Parse()

	if *cmd == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to init app: %v", err)
	}
	defer application.Close()
	defer logger.Log.Sync()

	err = application.Run(context.Background(), app.Options{
		Command:     *cmd,
		Email:       *email,
		Password:    *password,
		Username:    *username,
		Avatar:      *avatar,
		ID:          *id,
		Page:        *page,
		PageSize:    *pageSize,
		CategoryID:  *categoryID,
		KnowledgeID: *knowledgeID,
		Difficulty:  *difficulty,
		Frequency:   *frequency,
		Search:      *search,
		Answer:      *answer,
		Status:      *status,
		Mastery:     *mastery,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
