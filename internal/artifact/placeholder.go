package artifact

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
)

const (
	placeholderSize    = 512
	placeholderQuality = 85
	ContentType        = "image/jpeg"
)

// Placeholder 持有占位图像的字节，生成结果始终指向它
type Placeholder struct {
	data []byte
}

// Load 读取指定的 JPEG 文件；path 为空时渲染内置的夜樱图
func Load(path string) (*Placeholder, error) {
	if path == "" {
		data, err := Render(placeholderSize)
		if err != nil {
			return nil, err
		}
		return &Placeholder{data: data}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read placeholder image: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode placeholder image %s: %w", path, err)
	}

	return &Placeholder{data: data}, nil
}

func (p *Placeholder) Bytes() []byte {
	return p.data
}

// Render 生成一张正方形的夜空渐变图，散落若干樱花色圆点
func Render(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %d", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	top := color.RGBA{R: 0x0b, G: 0x10, B: 0x2a, A: 0xff}
	bottom := color.RGBA{R: 0x3a, G: 0x1f, B: 0x4d, A: 0xff}
	petal := color.RGBA{R: 0xf6, G: 0xc1, B: 0xd6, A: 0xff}

	for y := 0; y < size; y++ {
		t := float64(y) / float64(size)
		row := lerp(top, bottom, t)
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	// 固定种子的点位，保证每次渲染结果一致
	radius := max(size/64, 1)
	for i := 0; i < 48; i++ {
		cx := int(math.Mod(float64(i)*97.31, float64(size)))
		cy := int(math.Mod(float64(i*i)*13.7+float64(i)*41.9, float64(size)))
		fillCircle(img, cx, cy, radius, petal)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: placeholderQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	bounds := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if image.Pt(x, y).In(bounds) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
