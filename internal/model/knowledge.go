package model

import "time"

// Category 知识分类
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    *uint     `json:"parent_id"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// KnowledgePoint 知识点
type KnowledgePoint struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	CategoryID  uint        `json:"category_id"`
	Category    *Category   `json:"category,omitempty"`
	Difficulty  string      `json:"difficulty"` // easy / medium / hard
	Frequency   string      `json:"frequency"`  // high / medium / low
	CodeExample string      `json:"code_example"`
	References  StringArray `json:"references"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// GraphNode 知识图谱节点
type GraphNode struct {
	ID    string        `json:"id"`
	Label string        `json:"label"`
	Data  GraphNodeData `json:"data"`
}

// GraphNodeData 节点携带的知识点摘要
type GraphNodeData struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
}

// GraphEdge 知识图谱边，type 取 prerequisite / extended / related
type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Type   string `json:"type"`
}

// GraphData 知识图谱数据
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
