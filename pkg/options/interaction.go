package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// HandleScrollOptions toggles scroll interactions.
type HandleScrollOptions struct {
	MouseWheel       *bool
	PressedMouseMove *bool
	HorzTouchDrag    *bool
	VertTouchDrag    *bool
}

func (h *HandleScrollOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("mouse_wheel", &h.MouseWheel),
		optdoc.Optional("pressed_mouse_move", &h.PressedMouseMove),
		optdoc.Optional("horz_touch_drag", &h.HorzTouchDrag),
		optdoc.Optional("vert_touch_drag", &h.VertTouchDrag),
	}
}

// HandleScaleOptions toggles zoom interactions.
type HandleScaleOptions struct {
	MouseWheel           *bool
	Pinch                *bool
	AxisPressedMouseMove *bool
	AxisDoubleClickReset *bool
}

func (h *HandleScaleOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("mouse_wheel", &h.MouseWheel),
		optdoc.Optional("pinch", &h.Pinch),
		optdoc.Optional("axis_pressed_mouse_move", &h.AxisPressedMouseMove),
		optdoc.Optional("axis_double_click_reset", &h.AxisDoubleClickReset),
	}
}

// LocalizationOptions controls locale-dependent formatting.
type LocalizationOptions struct {
	Locale     string
	DateFormat string
}

func (l *LocalizationOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("locale", &l.Locale),
		optdoc.Value("date_format", &l.DateFormat),
	}
}

// KineticScrollOptions toggles momentum scrolling.
type KineticScrollOptions struct {
	Touch *bool
	Mouse *bool
}

func (k *KineticScrollOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("touch", &k.Touch),
		optdoc.Optional("mouse", &k.Mouse),
	}
}
