// Package bmi 计算身体质量指数（BMI）并给出分类
package bmi

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidInput 身高或体重缺失、非数字、为零或为负数
var ErrInvalidInput = errors.New("please enter valid height and weight")

// Category BMI 分类
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal weight"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// 分类阈值（下界包含在较高的分类中：bmi < 18.5 才算 Underweight）
const (
	UnderweightBelow = 18.5
	NormalBelow      = 25.0
	OverweightBelow  = 30.0
)

// Result 计算结果
type Result struct {
	BMI      float64  // 未取整的 BMI 值
	Category Category // 由未取整值判定
}

// Compute 根据身高（厘米）和体重（千克）计算 BMI
func Compute(heightCm, weightKg float64) (Result, error) {
	if !valid(heightCm) || !valid(weightKg) {
		return Result{}, ErrInvalidInput
	}

	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)
	if !valid(value) {
		return Result{}, ErrInvalidInput
	}

	return Result{BMI: value, Category: Classify(value)}, nil
}

// Classify 按阈值返回分类
func Classify(value float64) Category {
	switch {
	case value < UnderweightBelow:
		return Underweight
	case value < NormalBelow:
		return Normal
	case value < OverweightBelow:
		return Overweight
	default:
		return Obese
	}
}

// Rounded 返回保留一位小数的 BMI（用于显示）
func (r Result) Rounded() float64 {
	return math.Round(r.BMI*10) / 10
}

// String 返回显示文本，如 "Your BMI is 24.2 - Normal weight."
func (r Result) String() string {
	return fmt.Sprintf("Your BMI is %.1f - %s.", r.Rounded(), r.Category)
}

func valid(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// leadingNumber 匹配字符串开头的十进制数（允许 "170cm" 这类带单位的输入）
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber 宽松解析表单输入：忽略首尾空白，只取开头的数字部分
// 没有数字前缀时返回 ErrInvalidInput
func ParseNumber(s string) (float64, error) {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, ErrInvalidInput
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	return v, nil
}

// Parse 解析两个输入框的文本并计算 BMI
func Parse(height, weight string) (Result, error) {
	h, err := ParseNumber(height)
	if err != nil {
		return Result{}, err
	}
	w, err := ParseNumber(weight)
	if err != nil {
		return Result{}, err
	}
	return Compute(h, w)
}
