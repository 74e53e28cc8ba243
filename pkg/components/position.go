package components

// PositionComponent 实体左上角位置（内容坐标，绘制时由系统加上滚动偏移）
type PositionComponent struct {
	X, Y float64
}
