package descriptor

import (
	"fmt"

	"github.com/pfio-labs/pfio/internal/winapi"
)

// Resolved holds the winapi values a descriptor names.
type Resolved struct {
	Class   winapi.WindowClass
	Window  winapi.WindowSpec
	Show    int32
	Message *ResolvedMessage
}

// ResolvedMessage holds MessageBox arguments.
type ResolvedMessage struct {
	Text    string
	Caption string
	Flags   uint32
}

// Resolve turns flag names into values and binds the class and window to
// inst. proc may be nil for DefWindowProc.
func (d *Descriptor) Resolve(inst winapi.Instance, proc winapi.WndProc) (*Resolved, error) {
	classStyle, err := winapi.ParseFlags(winapi.ClassStyles, d.Class.Style)
	if err != nil {
		return nil, fmt.Errorf("class.style: %w", err)
	}
	style, err := winapi.ParseFlags(winapi.WindowStyles, d.Window.Style)
	if err != nil {
		return nil, fmt.Errorf("window.style: %w", err)
	}
	exStyle, err := winapi.ParseFlags(winapi.ExWindowStyles, d.Window.ExStyle)
	if err != nil {
		return nil, fmt.Errorf("window.ex_style: %w", err)
	}

	show := inst.CmdShow
	if d.Window.Show != "" {
		v, err := winapi.ParseFlags(winapi.ShowCommands, []string{d.Window.Show})
		if err != nil {
			return nil, fmt.Errorf("window.show: %w", err)
		}
		show = int32(v)
	}

	r := &Resolved{
		Class: winapi.NewWindowClass(
			classStyle, proc,
			d.Class.ClsExtra, d.Class.WndExtra,
			inst.Module, 0, 0, 0,
			d.Class.MenuName, d.Class.Name,
			0,
		),
		Window: winapi.WindowSpec{
			ExStyle:    exStyle,
			ClassName:  d.Class.Name,
			WindowName: d.Window.Title,
			Style:      style,
			X:          orDefault(d.Window.X),
			Y:          orDefault(d.Window.Y),
			Width:      orDefault(d.Window.Width),
			Height:     orDefault(d.Window.Height),
			Instance:   inst.Module,
		},
		Show: show,
	}

	if d.Message != nil {
		flags, err := winapi.ParseFlags(winapi.MessageBoxFlags, d.Message.Flags)
		if err != nil {
			return nil, fmt.Errorf("message.flags: %w", err)
		}
		caption := d.Message.Caption
		if caption == "" {
			caption = d.Window.Title
		}
		r.Message = &ResolvedMessage{Text: d.Message.Text, Caption: caption, Flags: flags}
	}
	return r, nil
}

func orDefault(v *int32) int32 {
	if v == nil {
		return winapi.CW_USEDEFAULT
	}
	return *v
}
