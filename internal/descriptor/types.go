package descriptor

// Descriptor is the parsed form of a window descriptor file.
type Descriptor struct {
	Class   ClassDesc    `yaml:"class"`
	Window  WindowDesc   `yaml:"window"`
	Message *MessageDesc `yaml:"message,omitempty"`
}

// ClassDesc describes the window class to register.
type ClassDesc struct {
	Name     string   `yaml:"name"`
	Style    []string `yaml:"style,omitempty"`
	ClsExtra int32    `yaml:"cls_extra,omitempty"`
	WndExtra int32    `yaml:"wnd_extra,omitempty"`
	MenuName string   `yaml:"menu_name,omitempty"`
}

// WindowDesc describes the window to create. Nil coordinates and sizes
// mean CW_USEDEFAULT.
type WindowDesc struct {
	Title   string   `yaml:"title"`
	Style   []string `yaml:"style,omitempty"`
	ExStyle []string `yaml:"ex_style,omitempty"`
	X       *int32   `yaml:"x,omitempty"`
	Y       *int32   `yaml:"y,omitempty"`
	Width   *int32   `yaml:"width,omitempty"`
	Height  *int32   `yaml:"height,omitempty"`
	Show    string   `yaml:"show,omitempty"`
}

// MessageDesc describes a message box shown once the window is up.
type MessageDesc struct {
	Text    string   `yaml:"text"`
	Caption string   `yaml:"caption,omitempty"`
	Flags   []string `yaml:"flags,omitempty"`
}
