package entities

import (
	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 数字输入框默认参数
const (
	NumericInputMaxLength   = 6
	NumericInputPaddingLeft = 8.0
)

// NewNumericInputEntity 创建数字输入框实体（BMI 的身高、体重）
func NewNumericInputEntity(em *ecs.EntityManager, x, y, width, height float64, font text.Face, placeholder string, onSubmit func()) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Width:       width,
		Height:      height,
		Font:        font,
		MaxLength:   NumericInputMaxLength,
		Numeric:     true,
		Placeholder: placeholder,
		PaddingLeft: NumericInputPaddingLeft,
		OnSubmit:    onSubmit,
	})

	return entity
}
