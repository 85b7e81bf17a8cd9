package dto

// ── 成绩计算器 DTO ──

// GradeItem 一项成绩；score/weight 接受数字或字符串
type GradeItem struct {
	ID     string    `json:"id"`
	Type   string    `json:"type,omitempty"`
	Label  string    `json:"label"`
	Score  FlexFloat `json:"score"`
	Weight FlexFloat `json:"weight"`
}

// CalculatorDefaultsResponse 计算器默认输入
type CalculatorDefaultsResponse struct {
	Items           []GradeItem `json:"items"`
	Target          float64     `json:"target"`
	FinalWeight     float64     `json:"final_weight"`
	PassGrade       float64     `json:"pass_grade"`
	SuggestedLabels []string    `json:"suggested_labels"` // 追加成绩项时依次使用
}

// EvaluateGradesRequest 计算请求
type EvaluateGradesRequest struct {
	Items  []GradeItem `json:"items"`
	Target *FlexFloat  `json:"target"` // 为空时取及格分
}

// PassCheckResponse 及格判定
type PassCheckResponse struct {
	Status        string  `json:"status"` // no_input | weight_exceeded | passable | impossible
	Message       string  `json:"message"`
	MinFinalScore float64 `json:"min_final_score"`
	FinalWeight   float64 `json:"final_weight"`
}

// EvaluateGradesResponse 计算结果，数值保留一位小数
type EvaluateGradesResponse struct {
	TotalWeight    float64           `json:"total_weight"`
	WeightedSum    float64           `json:"weighted_sum"`
	CurrentAverage float64           `json:"current_average"`
	Target         float64           `json:"target"`
	RequiredFinal  float64           `json:"required_final"`
	PassCheck      PassCheckResponse `json:"pass_check"`
}
