package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/fpsarena/common"
)

// Menu is the start / pause / game-over overlay.
type Menu struct {
	UI      *ebitenui.UI
	title   *widget.Text
	detail  *widget.Text
	primary *widget.Button
}

// NewMenu builds a centered panel with a primary action (start or resume),
// restart and quit. Buttons use colored nine-slices and the built-in basic
// font, so no theme assets are needed.
func NewMenu(g *Game) *Menu {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	m := &Menu{}
	m.title = widget.NewText(
		widget.TextOpts.Text("ARENA", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	m.detail = widget.NewText(
		widget.TextOpts.Text("WASD move, SPACE jump, CLICK fire, 1-3 weapons, ESC pause", &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Left: 30, Right: 30, Top: 6, Bottom: 6}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}
	m.primary = button("Start", g.capture)
	restart := button("Restart", g.restart)
	quit := button("Quit", g.quit)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(m.title)
	panel.AddChild(m.detail)
	panel.AddChild(m.primary)
	panel.AddChild(restart)
	panel.AddChild(quit)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	m.UI = &ebitenui.UI{Container: root}
	return m
}

// Show updates the labels for the current state.
func (m *Menu) Show(started, gameOver bool, status string) {
	switch {
	case gameOver:
		m.title.Label = status
		m.primary.GetWidget().Disabled = true
	case started:
		m.title.Label = "PAUSED"
		m.primary.Text().Label = "Resume"
		m.primary.GetWidget().Disabled = false
	default:
		m.title.Label = "ARENA"
		m.primary.Text().Label = "Start"
		m.primary.GetWidget().Disabled = false
	}
}
