// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Vec3 is a point in world space. X runs across the lanes, Y is vertical,
// Z is the forward axis: entities spawn at negative Z ahead of the player
// (who sits at Z=0) and scroll toward positive Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// LaneOffsets returns the valid lane X offsets for the given lane count,
// symmetric around the center lane. Count 3 yields {-1, 0, 1} scaled by
// width; count 5 yields {-2..2}.
func LaneOffsets(count int, width float64) []float64 {
	if count < 1 {
		count = 1
	}
	half := count / 2
	offsets := make([]float64, 0, count)
	for i := -half; i <= half; i++ {
		if len(offsets) == count {
			break
		}
		offsets = append(offsets, float64(i)*width)
	}
	return offsets
}

// ClampLane restricts a lane index to the valid symmetric band for the
// given lane count. Out-of-range requests are clamped, never rejected.
func ClampLane(lane, count int) int {
	half := count / 2
	if lane < -half {
		return -half
	}
	if lane > half {
		return half
	}
	return lane
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Lerp moves from toward to by at most step, without overshooting.
func Lerp(from, to, step float64) float64 {
	if AbsF(to-from) <= step {
		return to
	}
	if to > from {
		return from + step
	}
	return from - step
}
