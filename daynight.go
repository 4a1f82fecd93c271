package pretender

import "github.com/tanema/gween/ease"

// DayNightCycle drifts an ambient color between a day and a night color
// forever. Each color channel is its own infinite yoyo tween on the scene's
// TweenManager, started once at construction and never stopped.
type DayNightCycle struct {
	ambient   Color
	day       Color
	night     Color
	dayLength float32
	tweens    [3]*Tween
}

// NewDayNightCycle starts the cycle on tweens. dayLength is the time, in
// seconds, to go from day to night (and again from night to day).
func NewDayNightCycle(tweens *TweenManager, day, night Color, dayLength float32) *DayNightCycle {
	c := &DayNightCycle{
		ambient:   day,
		day:       day,
		night:     night,
		dayLength: dayLength,
	}
	target := ColorTarget(&c.ambient)
	c.tweens[0] = tweens.Animate(target, PropertyRed, night.R, dayLength, ease.InOutSine, Yoyo(0))
	c.tweens[1] = tweens.Animate(target, PropertyGreen, night.G, dayLength, ease.InOutSine, Yoyo(0))
	c.tweens[2] = tweens.Animate(target, PropertyBlue, night.B, dayLength, ease.InOutSine, Yoyo(0))
	return c
}

// Ambient returns the current ambient color.
func (c *DayNightCycle) Ambient() Color {
	return c.ambient
}

// DayLength returns the duration of one day-to-night leg.
func (c *DayNightCycle) DayLength() float32 {
	return c.dayLength
}

// Phase returns how far the ambient color is from day toward night, in
// [0, 1], measured on the red channel. It is 0 when day and night share the
// same red.
func (c *DayNightCycle) Phase() float64 {
	span := c.night.R - c.day.R
	if span == 0 {
		return 0
	}
	return clamp01((c.ambient.R - c.day.R) / span)
}
