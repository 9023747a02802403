package model

import "time"

// LearningProgress 学习进度，每个 (用户, 知识点) 一条，由更新接口 upsert
type LearningProgress struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"user_id"`
	KnowledgePointID uint            `json:"knowledge_point_id"`
	KnowledgePoint   *KnowledgePoint `json:"knowledge_point,omitempty"`
	Status           string          `json:"status"` // not_started / in_progress / completed
	MasteryLevel     int             `json:"mastery_level"`
	LastReviewedAt   *time.Time      `json:"last_reviewed_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LearningStats 学习统计
type LearningStats struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	InProgress int     `json:"in_progress"`
	NotStarted int     `json:"not_started"`
	MasteryAvg float64 `json:"mastery_avg"`
}
