package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"
)

// Widths — ширины миниатюр, генерируемых для каждого изображения.
var Widths = []int{500, 250, 100}

// ValidWidth проверяет, что ширина входит в генерируемый набор.
func ValidWidth(width int) bool {
	for _, w := range Widths {
		if w == width {
			return true
		}
	}
	return false
}

// Generate декодирует изображение и возвращает уменьшенные копии
// по одной на ширину. Исходники уже данной или меньшей ширины
// пере-кодируются без увеличения.
func Generate(data []byte, widths []int) (map[int][]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	out := make(map[int][]byte, len(widths))
	for _, width := range widths {
		scaled := scale(src, width)
		encoded, err := encode(scaled, format)
		if err != nil {
			return nil, err
		}
		out[width] = encoded
	}
	return out, nil
}

// scale уменьшает изображение до заданной ширины, сохраняя пропорции.
// Ближайший сосед: для миниатюр качества достаточно.
func scale(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= width {
		return src
	}

	height := srcH * width / srcW
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		sy := bounds.Min.Y + y*srcH/height
		for x := 0; x < width; x++ {
			sx := bounds.Min.X + x*srcW/width
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

func encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			return nil, err
		}
	default:
		// png и всё остальное (gif пере-кодируем в png)
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
