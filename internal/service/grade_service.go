package service

import (
	"campus-portal/config"
	"campus-portal/internal/dto"
)

var defaultGradeItems = []dto.GradeItem{
	{ID: "1", Type: "vize", Label: "Vize Notu", Score: 85, Weight: 40},
	{ID: "2", Type: "quiz", Label: "Quiz Notu", Score: 90, Weight: 10},
	{ID: "3", Type: "proje", Label: "Proje Notu", Score: 75, Weight: 10},
}

var suggestedGradeLabels = []string{"Ödev Notu", "Lab Notu", "Sunum Notu", "Katılım Notu"}

const defaultTargetGrade = 90

// GradeService 成绩计算器接口（纯计算，无状态）
type GradeService interface {
	Defaults() *dto.CalculatorDefaultsResponse
	Evaluate(req *dto.EvaluateGradesRequest) *dto.EvaluateGradesResponse
}

type gradeService struct {
	rule GradingRule
}

// NewGradeService 创建 GradeService 实例
func NewGradeService(cfg *config.GradingConfig) GradeService {
	return &gradeService{rule: GradingRule{
		FinalWeight:   cfg.FinalWeight,
		PassGrade:     cfg.PassGrade,
		MinFinalScore: cfg.MinFinalScore,
	}}
}

func (s *gradeService) Defaults() *dto.CalculatorDefaultsResponse {
	items := make([]dto.GradeItem, len(defaultGradeItems))
	copy(items, defaultGradeItems)
	return &dto.CalculatorDefaultsResponse{
		Items:           items,
		Target:          defaultTargetGrade,
		FinalWeight:     s.rule.FinalWeight,
		PassGrade:       s.rule.PassGrade,
		SuggestedLabels: suggestedGradeLabels,
	}
}

// Evaluate 宽松输入：无法解析的分数与权重已在反序列化时记为 0
func (s *gradeService) Evaluate(req *dto.EvaluateGradesRequest) *dto.EvaluateGradesResponse {
	inputs := make([]GradeInput, 0, len(req.Items))
	for _, it := range req.Items {
		inputs = append(inputs, GradeInput{Score: it.Score.Float64(), Weight: it.Weight.Float64()})
	}
	totals := SumGrades(inputs)

	target := s.rule.PassGrade
	if req.Target != nil {
		target = req.Target.Float64()
	}

	pc := EvaluatePass(totals, s.rule)
	return &dto.EvaluateGradesResponse{
		TotalWeight:    round1(totals.TotalWeight),
		WeightedSum:    round1(totals.WeightedSum),
		CurrentAverage: round1(totals.Average),
		Target:         target,
		RequiredFinal:  round1(RequiredFinal(totals.Average, totals.TotalWeight, target)),
		PassCheck: dto.PassCheckResponse{
			Status:        pc.Status,
			Message:       PassMessage(pc, totals, s.rule),
			MinFinalScore: pc.MinFinalScore,
			FinalWeight:   s.rule.FinalWeight,
		},
	}
}
