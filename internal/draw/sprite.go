package draw

import (
	"image"
	"math"
)

// SpriteSize is the edge length in texels of the particle sprite.
const SpriteSize = 64

// spriteGray is the fixed RGB value of every sprite texel; only alpha
// carries the disc shape.
const spriteGray = 128

// Smoothstep is the cubic Hermite curve x²(3−2x).
func Smoothstep(x float64) float64 {
	return x * x * (3 - 2*x)
}

// SpriteAlpha returns the sprite opacity at normalised coordinates
// (fx, fy) ∈ [−1,1]²: a soft disc that is fully opaque at the centre and
// fades to zero at radius 1.
func SpriteAlpha(fx, fy float64) uint8 {
	d := math.Sqrt(fx*fx + fy*fy)
	if d > 1 {
		return 0
	}
	return uint8(Smoothstep(1-d) * 255)
}

// BuildParticleSprite renders the particle falloff bitmap. Each texel is
// sampled at its centre.
func BuildParticleSprite() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	for y := 0; y < SpriteSize; y++ {
		fy := (float64(y)+0.5)/SpriteSize*2 - 1
		for x := 0; x < SpriteSize; x++ {
			fx := (float64(x)+0.5)/SpriteSize*2 - 1
			i := img.PixOffset(x, y)
			img.Pix[i+0] = spriteGray
			img.Pix[i+1] = spriteGray
			img.Pix[i+2] = spriteGray
			img.Pix[i+3] = SpriteAlpha(fx, fy)
		}
	}
	return img
}
