package viewer

import (
	"fmt"

	"github.com/akmonengine/orbit/config"
)

// controls is the panel's behaviour without its widgets. Edits are written straight
// into the settings it was built with; captions are written through the label pointers.
type controls struct {
	settings *config.Settings

	values     map[config.Field]*string
	projection *string
}

func newControls(settings *config.Settings) controls {
	return controls{
		settings: settings,
		values:   make(map[config.Field]*string),
	}
}

// step moves a slider by delta, clamped to the slider range
func (c *controls) step(field config.Field, delta float64) {
	if _, err := c.settings.Step(field, delta); err != nil {
		return
	}
	c.refresh()
}

func (c *controls) toggleProjection() {
	c.settings.Orthographic = !c.settings.Orthographic
	c.refresh()
}

// refresh rewrites every label from the settings, which may also change on reload
func (c *controls) refresh() {
	for field, label := range c.values {
		*label = c.sliderText(field)
	}
	if c.projection != nil {
		*c.projection = c.projectionText()
	}
}

func (c *controls) sliderText(field config.Field) string {
	v, _ := c.settings.Get(field)
	return fmt.Sprintf("%s: %.2f", field.Label(), v)
}

func (c *controls) projectionText() string {
	if c.settings.Orthographic {
		return "Projection: orthographic"
	}
	return "Projection: perspective"
}
