package viewer

import (
	"image/color"

	"github.com/akmonengine/orbit/config"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const sliderStep = 0.25

// panel is the "Settings" window: one -/+ row per slider and the projection toggle.
type panel struct {
	controls
	ui *ebitenui.UI
}

func newPanel(settings *config.Settings) *panel {
	p := &panel{controls: newControls(settings)}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	buttonImage := &widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	column := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	column.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Settings", &face, labelColor),
	))

	for _, field := range config.Sliders {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		value := widget.NewLabel(
			widget.LabelOpts.Text(p.sliderText(field), &face, labelColor),
		)
		p.values[field] = &value.Label

		row.AddChild(p.stepButton("-", field, -sliderStep, buttonImage, &face, btnTextColor))
		row.AddChild(p.stepButton("+", field, sliderStep, buttonImage, &face, btnTextColor))
		row.AddChild(value)
		column.AddChild(row)
	}

	projection := widget.NewLabel(
		widget.LabelOpts.Text(p.projectionText(), &face, labelColor),
	)
	p.projection = &projection.Label
	toggle := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Orthographic Toggle", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.toggleProjection()
		}),
	)
	column.AddChild(toggle)
	column.AddChild(projection)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)

	p.ui = &ebitenui.UI{Container: root}
	return p
}

func (p *panel) stepButton(caption string, field config.Field, delta float64, image *widget.ButtonImage, face *ebtext.Face, textColor *widget.ButtonTextColor) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(image),
		widget.ButtonOpts.Text(caption, face, textColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 22)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.step(field, delta)
		}),
	)
}
