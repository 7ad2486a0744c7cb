package preview

import "vincode/internal/workspace"

// Frame is the viewport the preview is rendered in. Zero dimensions mean
// "fill the available space".
type Frame struct {
	Device workspace.Device `json:"device"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
}

func (f Frame) Fluid() bool { return f.Width == 0 && f.Height == 0 }

// DeviceFrame returns the viewport of a device preset.
func DeviceFrame(d workspace.Device) Frame {
	switch d {
	case workspace.DeviceMobile:
		return Frame{Device: d, Width: 375, Height: 667}
	case workspace.DeviceTablet:
		return Frame{Device: d, Width: 768, Height: 1024}
	default:
		return Frame{Device: workspace.DeviceDesktop}
	}
}
