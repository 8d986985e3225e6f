//go:build windows

package winapi

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procShowWindow       = user32.NewProc("ShowWindow")
	procUpdateWindow     = user32.NewProc("UpdateWindow")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procGetClassNameW    = user32.NewProc("GetClassNameW")
)

// Windows hands out a fixed number of callback slots per process and never
// frees them, so every class with a WndProc shares one trampoline that
// looks the procedure up by class name.
var (
	trampolineOnce sync.Once
	trampoline     uintptr

	classProcsMu sync.RWMutex
	classProcs   = map[string]WndProc{}
)

func dispatch(hwnd, msg, wParam, lParam uintptr) uintptr {
	var buf [257]uint16
	n, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))

	classProcsMu.RLock()
	fn := classProcs[windows.UTF16ToString(buf[:n])]
	classProcsMu.RUnlock()

	if fn == nil {
		return DefWindowProc(Handle(hwnd), uint32(msg), wParam, lParam)
	}
	return fn(Handle(hwnd), uint32(msg), wParam, lParam)
}

// wndClassEx is the WNDCLASSEXW layout.
type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

// NewInstance reads the module handle, command line and show command of
// the running process.
func NewInstance() (Instance, error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return Instance{}, err
	}

	show := int32(SW_SHOWDEFAULT)
	var si windows.StartupInfo
	if err := windows.GetStartupInfo(&si); err == nil && si.Flags&windows.STARTF_USESHOWWINDOW != 0 {
		show = int32(si.ShowWindow)
	}

	return Instance{
		Module:  Handle(module),
		CmdLine: windows.UTF16PtrToString(windows.GetCommandLine()),
		CmdShow: show,
	}, nil
}

// MessageBox shows a modal message box and returns the ID* of the pressed
// button. owner may be 0.
func MessageBox(owner Handle, text, caption string, flags uint32) (int, error) {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return 0, err
	}
	c, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return 0, err
	}
	ret, err := windows.MessageBox(windows.HWND(owner), t, c, flags)
	if ret == 0 {
		return 0, err
	}
	return int(ret), nil
}

// RegisterClass registers wc and returns the class atom. Classes with a
// WndProc are routed through one shared callback, so any number of them
// can be registered.
func RegisterClass(wc WindowClass) (uint16, error) {
	className, err := windows.UTF16PtrFromString(wc.ClassName)
	if err != nil {
		return 0, err
	}
	var menuName *uint16
	if wc.MenuName != "" {
		if menuName, err = windows.UTF16PtrFromString(wc.MenuName); err != nil {
			return 0, err
		}
	}

	proc := procDefWindowProcW.Addr()
	if wc.WndProc != nil {
		trampolineOnce.Do(func() { trampoline = windows.NewCallback(dispatch) })
		proc = trampoline
	}

	cls := wndClassEx{
		style:      wc.Style,
		wndProc:    proc,
		clsExtra:   wc.ClsExtra,
		wndExtra:   wc.WndExtra,
		instance:   windows.Handle(wc.Instance),
		icon:       windows.Handle(wc.Icon),
		cursor:     windows.Handle(wc.Cursor),
		background: windows.Handle(wc.Background),
		menuName:   menuName,
		className:  className,
		iconSm:     windows.Handle(wc.IconSm),
	}
	cls.size = uint32(unsafe.Sizeof(cls))

	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&cls)))
	if atom == 0 {
		return 0, err
	}
	if wc.WndProc != nil {
		classProcsMu.Lock()
		classProcs[wc.ClassName] = wc.WndProc
		classProcsMu.Unlock()
	}
	return uint16(atom), nil
}

// CreateWindow calls CreateWindowExW with the fields of spec.
func CreateWindow(spec WindowSpec) (Handle, error) {
	className, err := windows.UTF16PtrFromString(spec.ClassName)
	if err != nil {
		return 0, err
	}
	windowName, err := windows.UTF16PtrFromString(spec.WindowName)
	if err != nil {
		return 0, err
	}

	hwnd, _, err := procCreateWindowExW.Call(
		uintptr(spec.ExStyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		uintptr(spec.Style),
		uintptr(spec.X),
		uintptr(spec.Y),
		uintptr(spec.Width),
		uintptr(spec.Height),
		uintptr(spec.Parent),
		uintptr(spec.Menu),
		uintptr(spec.Instance),
		spec.Param,
	)
	if hwnd == 0 {
		return 0, err
	}
	return Handle(hwnd), nil
}

// ShowWindow sets the show state of hwnd and then repaints it. The result
// is UpdateWindow's.
func ShowWindow(hwnd Handle, cmdShow int32) bool {
	procShowWindow.Call(uintptr(hwnd), uintptr(cmdShow))
	ok, _, _ := procUpdateWindow.Call(uintptr(hwnd))
	return ok != 0
}

// DestroyWindow destroys hwnd.
func DestroyWindow(hwnd Handle) error {
	ok, _, err := procDestroyWindow.Call(uintptr(hwnd))
	if ok == 0 {
		return err
	}
	return nil
}

// DefWindowProc forwards a message to the default window procedure.
func DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r
}

// Supported reports whether the windowing calls are available.
func Supported() bool {
	return user32.Load() == nil
}
