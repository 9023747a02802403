package model

import "time"

// Exercise 练习题，options 在线上为二次编码字符串，反序列化时解开
type Exercise struct {
	ID               uint        `json:"id"`
	KnowledgePointID uint        `json:"knowledge_point_id"`
	Question         string      `json:"question"`
	Options          StringArray `json:"options"`
	Type             string      `json:"type"` // single_choice / multiple_choice
	Explanation      string      `json:"explanation"`
	Difficulty       string      `json:"difficulty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// SubmitResult 提交答案的判题结果
type SubmitResult struct {
	IsCorrect     bool        `json:"is_correct"`
	CorrectAnswer StringArray `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
	RecordID      uint        `json:"record_id"`
}

// WrongExercise 错题聚合，由服务端根据答题记录统计
type WrongExercise struct {
	ID            uint        `json:"id"`
	Question      string      `json:"question"`
	UserAnswer    StringArray `json:"user_answer"`
	CorrectAnswer StringArray `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
	WrongCount    int         `json:"wrong_count"`
}
