// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"go-pathfinder/pkg/hexgeom"
	"go-pathfinder/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// SearchOverlay is the per-frame search state drawn on top of the map.
type SearchOverlay struct {
	Open    map[hexgeom.Hex]bool
	Closed  map[hexgeom.Hex]bool
	Path    []hexgeom.Hex
	Current *hexgeom.Hex
	Start   *hexgeom.Hex
	Goal    *hexgeom.Hex
}

// HexRenderer draws a hex map once into an offscreen image and overlays the
// live search state on every frame.
type HexRenderer struct {
	hexMap       *hexmap.Map
	colors       MapColors
	hexSize      float64
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	strokeImg    *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image
	maxHeight    float64
}

// NewHexRenderer prepares a renderer for the given map. The label font is
// optional: when the font file cannot be loaded, coordinate labels are
// skipped.
func NewHexRenderer(hexMap *hexmap.Map, colors MapColors, hexSize float64, screenWidth, screenHeight int, fontPath string, fontSize float64) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	maxHeight := 0.0
	for _, h := range hexMap.Heights {
		if h > maxHeight {
			maxHeight = h
		}
	}

	r := &HexRenderer{
		hexMap:       hexMap,
		colors:       colors,
		hexSize:      hexSize,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		strokeImg:    strokeImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     loadFace(fontPath, fontSize),
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
		maxHeight:    maxHeight,
	}
	r.RenderMapImage()
	return r
}

func loadFace(path string, size float64) font.Face {
	if path == "" {
		return nil
	}
	fontData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("render: label font unavailable (%v), labels disabled", err)
		return nil
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Printf("render: cannot parse label font: %v", err)
		return nil
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("render: cannot build label face: %v", err)
		return nil
	}
	return face
}

// RenderMapImage rebuilds the prerendered background. Call it after the map
// changes.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)
	for hex := range r.hexMap.Tiles {
		r.drawHexFill(r.mapImage, hex, r.baseColor(hex), true)
	}
	for hex := range r.hexMap.Tiles {
		r.drawHexOutline(r.mapImage, hex)
	}
}

// Draw renders the prerendered map, then the straight guide line between the
// endpoints, then the open/closed/path overlay.
func (r *HexRenderer) Draw(screen *ebiten.Image, overlay SearchOverlay) {
	screen.DrawImage(r.mapImage, nil)

	if overlay.Start != nil && overlay.Goal != nil {
		for _, hex := range overlay.Start.LineTo(*overlay.Goal) {
			if r.hexMap.Contains(hex) {
				r.drawHexFill(screen, hex, r.colors.GuideLineColor, false)
			}
		}
	}
	for hex := range overlay.Closed {
		r.drawHexFill(screen, hex, r.colors.ClosedColor, false)
	}
	for hex := range overlay.Open {
		r.drawHexFill(screen, hex, r.colors.OpenColor, false)
	}
	for _, hex := range overlay.Path {
		r.drawHexFill(screen, hex, r.colors.PathColor, false)
	}
	if overlay.Current != nil {
		r.drawHexFill(screen, *overlay.Current, r.colors.CurrentColor, false)
	}
	if overlay.Start != nil {
		r.drawHexFill(screen, *overlay.Start, r.colors.EntryColor, false)
	}
	if overlay.Goal != nil {
		r.drawHexFill(screen, *overlay.Goal, r.colors.ExitColor, false)
	}
}

// baseColor shades passable tiles by terrain elevation so the 2D view hints
// at the heights the 3D heuristics see.
func (r *HexRenderer) baseColor(hex hexgeom.Hex) color.RGBA {
	tile := r.hexMap.Tiles[hex]
	switch {
	case hex == r.hexMap.Entry:
		return r.colors.EntryColor
	case hex == r.hexMap.Exit:
		return r.colors.ExitColor
	case !tile.Passable:
		return r.colors.ImpassableColor
	}
	if r.maxHeight <= 0 {
		return r.colors.PassableColor
	}
	t := r.hexMap.Heights[hex] / r.maxHeight
	return LerpColor(r.colors.PassableColor, Lighten(r.colors.PassableColor, 70), t)
}

func (r *HexRenderer) hexCenter(hex hexgeom.Hex) (float64, float64) {
	x, y := hex.ToPixel(r.hexSize)
	x += float64(r.screenWidth) / 2
	y += float64(r.screenHeight) / 2
	return x, y
}

func (r *HexRenderer) appendHexPath(hex hexgeom.Hex) vector.Path {
	x, y := r.hexCenter(hex)
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + r.hexSize*math.Cos(angle)
		py := y + r.hexSize*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, hex hexgeom.Hex, fillColor color.RGBA, withLabel bool) {
	path := r.appendHexPath(hex)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	if !withLabel || r.fontFace == nil {
		return
	}
	label := fmt.Sprintf("%d,%d", hex.Q, hex.R)
	var textColor color.RGBA
	if (int(fillColor.R)+int(fillColor.G)+int(fillColor.B))/3 > 128 {
		textColor = r.colors.TextDarkColor
	} else {
		textColor = r.colors.TextLightColor
	}
	x, y := r.hexCenter(hex)
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, textColor)
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, hex hexgeom.Hex) {
	path := r.appendHexPath(hex)

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})

	strokeColor := Lighten(r.baseColor(hex), 40)
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(strokeColor.R) / 255
		r.strokeVs[i].ColorG = float32(strokeColor.G) / 255
		r.strokeVs[i].ColorB = float32(strokeColor.B) / 255
		r.strokeVs[i].ColorA = float32(strokeColor.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
