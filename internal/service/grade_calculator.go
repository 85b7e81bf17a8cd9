package service

import (
	"fmt"
	"math"
)

// ── 成绩计算 ──

// 及格判定状态
const (
	PassStatusNoInput        = "no_input"
	PassStatusWeightExceeded = "weight_exceeded"
	PassStatusPassable       = "passable"
	PassStatusImpossible     = "impossible"
)

// GradeInput 一项已知成绩
type GradeInput struct {
	Score  float64
	Weight float64
}

// GradeTotals 已知成绩汇总
type GradeTotals struct {
	TotalWeight float64
	WeightedSum float64 // Σ score·weight
	Average     float64 // WeightedSum / TotalWeight，无权重时为 0
}

// PassCheck 及格判定结果
type PassCheck struct {
	Status        string
	MinFinalScore float64
}

// GradingRule 及格规则：期末占比固定，期末成绩有下限
type GradingRule struct {
	FinalWeight   float64
	PassGrade     float64
	MinFinalScore float64
}

// SumGrades 计算总权重、加权和与当前平均分
func SumGrades(items []GradeInput) GradeTotals {
	var t GradeTotals
	for _, it := range items {
		t.TotalWeight += it.Weight
		t.WeightedSum += it.Score * it.Weight
	}
	if t.TotalWeight > 0 {
		t.Average = t.WeightedSum / t.TotalWeight
	}
	return t
}

// RequiredFinal 在当前平均分占 weight% 的前提下，达到 target 所需的期末分，结果限制在 [0, 100]
// weight >= 100 时期末已无权重：已达标返回 0，否则返回 100
func RequiredFinal(average, weight, target float64) float64 {
	if weight >= 100 {
		if average >= target {
			return 0
		}
		return 100
	}

	required := (target - average*weight/100) / ((100 - weight) / 100)
	return clamp(required, 0, 100)
}

// EvaluatePass 按固定期末权重判断能否及格
// 期末所需分 = max(期末下限, (及格分·100 − 加权和) / 期末权重)
func EvaluatePass(t GradeTotals, rule GradingRule) PassCheck {
	if t.TotalWeight == 0 {
		return PassCheck{Status: PassStatusNoInput}
	}
	if t.TotalWeight > 100-rule.FinalWeight {
		return PassCheck{Status: PassStatusWeightExceeded}
	}

	minFinal := math.Max(rule.MinFinalScore, (rule.PassGrade*100-t.WeightedSum)/rule.FinalWeight)
	if minFinal > 100 {
		return PassCheck{Status: PassStatusImpossible, MinFinalScore: round1(minFinal)}
	}
	return PassCheck{Status: PassStatusPassable, MinFinalScore: round1(minFinal)}
}

// PassMessage 及格判定的提示文案
func PassMessage(pc PassCheck, t GradeTotals, rule GradingRule) string {
	switch pc.Status {
	case PassStatusNoInput:
		return "⚠️ Lütfen en az bir not girişi yapın!"
	case PassStatusWeightExceeded:
		return fmt.Sprintf("⚠️ Toplam ağırlık %%%s'ı aşıyor (%%%s)!\n\nFinal ağırlığı %%%s sabit olduğundan, diğer notların toplam ağırlığı en fazla %%%s olabilir.\n\nLütfen ağırlıkları düzeltin.",
			trimFloat(100-rule.FinalWeight), trimFloat(t.TotalWeight), trimFloat(rule.FinalWeight), trimFloat(100-rule.FinalWeight))
	case PassStatusImpossible:
		return "❌ Dersi Geçemezsiniz!\n\nMaalesef mevcut notlarınızla finalden 100 alsanız bile dersi geçemezsiniz."
	default:
		return fmt.Sprintf("🎯 Dersi geçmek için finalden\nminimum %.1f almanız gerekiyor.\n\n⚠️ Final notu %s'nin altıysa otomatik kalırsınız!",
			pc.MinFinalScore, trimFloat(rule.MinFinalScore))
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round1 保留一位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// trimFloat 整数不带小数点
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
