package glm

import (
	"golang.org/x/mobile/exp/f32"
)

func Sin(r Rad) float32 {
	return f32.Sin(float32(r))
}

func Cos(r Rad) float32 {
	return f32.Cos(float32(r))
}
