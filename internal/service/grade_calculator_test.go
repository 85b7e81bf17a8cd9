package service

import (
	"math"
	"strings"
	"testing"
)

var defaultRule = GradingRule{FinalWeight: 60, PassGrade: 50, MinFinalScore: 50}

func TestRequiredFinal(t *testing.T) {
	tests := []struct {
		name                    string
		average, weight, target float64
		want                    float64
	}{
		{"常规", 85, 40, 90, 93.3},
		{"已超目标", 100, 60, 50, 0},
		{"不可能达到", 10, 90, 90, 100},
		{"无已知成绩", 0, 0, 70, 70},
		{"权重满100且已达标", 80, 100, 70, 0},
		{"权重满100未达标", 60, 100, 70, 100},
		{"权重超100", 60, 120, 70, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := round1(RequiredFinal(tt.average, tt.weight, tt.target))
			if got != tt.want {
				t.Errorf("RequiredFinal(%v,%v,%v)=%v, 期望 %v", tt.average, tt.weight, tt.target, got, tt.want)
			}
		})
	}
}

func TestRequiredFinal_AlwaysInRange(t *testing.T) {
	for avg := 0.0; avg <= 100; avg += 5 {
		for w := 0.0; w <= 100; w += 5 {
			for target := 0.0; target <= 100; target += 5 {
				got := RequiredFinal(avg, w, target)
				if got < 0 || got > 100 || math.IsNaN(got) {
					t.Fatalf("RequiredFinal(%v,%v,%v)=%v 超出 [0,100]", avg, w, target, got)
				}
			}
		}
	}
}

func TestSumGrades(t *testing.T) {
	totals := SumGrades([]GradeInput{
		{Score: 85, Weight: 40},
		{Score: 90, Weight: 10},
		{Score: 75, Weight: 10},
	})
	if totals.TotalWeight != 60 {
		t.Errorf("期望总权重 60，实际=%v", totals.TotalWeight)
	}
	if totals.WeightedSum != 5050 {
		t.Errorf("期望加权和 5050，实际=%v", totals.WeightedSum)
	}
	if round1(totals.Average) != 84.2 {
		t.Errorf("期望平均分 84.2，实际=%v", round1(totals.Average))
	}

	if empty := SumGrades(nil); empty.Average != 0 || empty.TotalWeight != 0 {
		t.Errorf("空输入应全部为 0，实际=%+v", empty)
	}
}

func TestEvaluatePass(t *testing.T) {
	tests := []struct {
		name       string
		items      []GradeInput
		wantStatus string
		wantMin    float64
	}{
		{"无输入", nil, PassStatusNoInput, 0},
		{"权重为零", []GradeInput{{Score: 80, Weight: 0}}, PassStatusNoInput, 0},
		{"超出40", []GradeInput{{Score: 80, Weight: 30}, {Score: 80, Weight: 20}}, PassStatusWeightExceeded, 0},
		{"期末下限生效", []GradeInput{{Score: 85, Weight: 40}}, PassStatusPassable, 50},
		{"需高于下限", []GradeInput{{Score: 10, Weight: 40}}, PassStatusPassable, 76.7},
		{"全零成绩", []GradeInput{{Score: 0, Weight: 40}, {Score: 0, Weight: 0}}, PassStatusPassable, 83.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := EvaluatePass(SumGrades(tt.items), defaultRule)
			if pc.Status != tt.wantStatus {
				t.Fatalf("期望状态 %s，实际=%s", tt.wantStatus, pc.Status)
			}
			if pc.MinFinalScore != tt.wantMin {
				t.Errorf("期望最低期末分 %v，实际=%v", tt.wantMin, pc.MinFinalScore)
			}
		})
	}
}

func TestEvaluatePass_Impossible(t *testing.T) {
	// 期末权重较小时可能无法及格
	rule := GradingRule{FinalWeight: 30, PassGrade: 50, MinFinalScore: 50}
	pc := EvaluatePass(SumGrades([]GradeInput{{Score: 0, Weight: 70}}), rule)
	if pc.Status != PassStatusImpossible {
		t.Errorf("期望 impossible，实际=%s (min=%v)", pc.Status, pc.MinFinalScore)
	}
}

func TestPassMessage(t *testing.T) {
	totals := SumGrades([]GradeInput{{Score: 80, Weight: 50}})
	msg := PassMessage(EvaluatePass(totals, defaultRule), totals, defaultRule)
	if !strings.Contains(msg, "%40'ı aşıyor (%50)") {
		t.Errorf("权重超限文案错误: %s", msg)
	}

	totals = SumGrades([]GradeInput{{Score: 10, Weight: 40}})
	msg = PassMessage(EvaluatePass(totals, defaultRule), totals, defaultRule)
	if !strings.Contains(msg, "minimum 76.7") {
		t.Errorf("可及格文案错误: %s", msg)
	}
}
