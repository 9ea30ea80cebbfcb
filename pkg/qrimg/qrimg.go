// Package qrimg превращает URL в PNG-изображение QR-кода.
// Кодирование детерминировано: одинаковые аргументы дают одинаковые байты.
package qrimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"slackqr_go/models"
)

// Encode кодирует url в QR-код с уровнем коррекции Low и отрисовывает его
// в PNG с учётом визуальных опций. Версия символа подбирается минимальной,
// достаточной для полезной нагрузки; opts влияют только на отрисовку.
func Encode(url string, opts *models.QROptions) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("qr: empty url")
	}

	boxSize, border, fill, back := renderParams(opts)

	fillColor, err := parseColor(fill)
	if err != nil {
		return nil, fmt.Errorf("qr: fill_color: %w", err)
	}
	backColor, err := parseColor(back)
	if err != nil {
		return nil, fmt.Errorf("qr: back_color: %w", err)
	}

	q, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	// Тихую зону библиотеки отключаем: рамку рисуем сами,
	// чтобы уважать произвольную ширину border.
	q.DisableBorder = true
	modules := q.Bitmap()

	img := render(modules, boxSize, border, fillColor, backColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qr: png: %w", err)
	}
	return buf.Bytes(), nil
}

// renderParams подставляет значения по умолчанию вместо пустых полей опций.
func renderParams(opts *models.QROptions) (boxSize, border int, fill, back string) {
	boxSize = models.DefaultBoxSize
	border = models.DefaultBorder
	fill = models.DefaultFillColor
	back = models.DefaultBackColor
	if opts == nil {
		return
	}
	if opts.BoxSize > 0 {
		boxSize = opts.BoxSize
	}
	if opts.Border > 0 {
		border = opts.Border
	}
	if opts.FillColor != "" {
		fill = opts.FillColor
	}
	if opts.BackColor != "" {
		back = opts.BackColor
	}
	return
}

// render растягивает матрицу модулей в картинку: boxSize пикселей на модуль
// плюс рамка в border модулей цветом фона.
func render(modules [][]bool, boxSize, border int, fill, back color.RGBA) *image.RGBA {
	n := len(modules)
	side := (n + 2*border) * boxSize
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetRGBA(x, y, back)
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !modules[row][col] {
				continue
			}
			x0 := (col + border) * boxSize
			y0 := (row + border) * boxSize
			for y := y0; y < y0+boxSize; y++ {
				for x := x0; x < x0+boxSize; x++ {
					img.SetRGBA(x, y, fill)
				}
			}
		}
	}
	return img
}

// Именованные цвета, которые принимает API (как в исходных опциях fill/back).
var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"red":    {255, 0, 0, 255},
	"green":  {0, 128, 0, 255},
	"blue":   {0, 0, 255, 255},
	"yellow": {255, 255, 0, 255},
	"orange": {255, 165, 0, 255},
	"purple": {128, 0, 128, 255},
	"gray":   {128, 128, 128, 255},
	"grey":   {128, 128, 128, 255},
}

// parseColor принимает имя цвета либо hex-запись #RGB / #RRGGBB.
func parseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3:
			r, err1 := hexByte(string([]byte{hex[0], hex[0]}))
			g, err2 := hexByte(string([]byte{hex[1], hex[1]}))
			b, err3 := hexByte(string([]byte{hex[2], hex[2]}))
			if err1 == nil && err2 == nil && err3 == nil {
				return color.RGBA{r, g, b, 255}, nil
			}
		case 6:
			r, err1 := hexByte(hex[0:2])
			g, err2 := hexByte(hex[2:4])
			b, err3 := hexByte(hex[4:6])
			if err1 == nil && err2 == nil && err3 == nil {
				return color.RGBA{r, g, b, 255}, nil
			}
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func hexByte(s string) (byte, error) {
	var v byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		default:
			return 0, fmt.Errorf("bad hex digit %q", c)
		}
	}
	return v, nil
}
