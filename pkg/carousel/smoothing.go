package carousel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Damp 指数平滑：value 向 target 移动 (target-value)*rate
//
// rate ∈ (0, 1) 时单调收敛且不会越过目标。
func Damp(value, target, rate float64) float64 {
	return value + (target-value)*rate
}

// AdaptiveRate 接近目标时（delta < near）把平滑速率减半，减少静止附近的抖动
func AdaptiveRate(rate, delta, near float64) float64 {
	if delta < near {
		return rate * 0.5
	}
	return rate
}

// Clamp 将 n 限制在 [minN, maxN]
func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)
	return n
}

// Sign 返回 -1、0 或 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Wrap 把 x 折叠进环 [-total/2, total/2)
func Wrap(x, total float64) float64 {
	r := math.Mod(x, total)
	if r < 0 {
		r += total
	}
	if r >= total/2 {
		r -= total
	}
	return r
}
