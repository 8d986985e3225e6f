package winapi

import (
	"fmt"
	"sort"
	"strings"
)

// Handle is an opaque OS handle (HWND, HINSTANCE, HICON, HCURSOR, HBRUSH,
// HMENU). The zero value is NULL.
type Handle uintptr

// WndProc is a window procedure. A nil WndProc in a WindowClass registers
// DefWindowProc.
type WndProc func(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr

// Instance carries the startup parameters Windows hands to a GUI process.
// Obtain it once with NewInstance and pass it explicitly.
type Instance struct {
	Module  Handle // HINSTANCE of the running executable
	CmdLine string
	CmdShow int32 // SW_* value the process was started with
}

// WindowClass mirrors WNDCLASSEX. cbSize is filled in at registration.
type WindowClass struct {
	Style      uint32
	WndProc    WndProc
	ClsExtra   int32
	WndExtra   int32
	Instance   Handle
	Icon       Handle
	Cursor     Handle
	Background Handle
	MenuName   string
	ClassName  string
	IconSm     Handle
}

// WindowSpec holds the CreateWindowEx arguments.
type WindowSpec struct {
	ExStyle    uint32
	ClassName  string
	WindowName string
	Style      uint32
	X, Y       int32
	Width      int32
	Height     int32
	Parent     Handle
	Menu       Handle
	Instance   Handle
	Param      uintptr
}

// NewWindowClass fills a WindowClass from its parts, in WNDCLASSEX order.
func NewWindowClass(
	style uint32,
	proc WndProc,
	clsExtra, wndExtra int32,
	inst, icon, cursor, background Handle,
	menuName, className string,
	iconSm Handle,
) WindowClass {
	return WindowClass{
		Style:      style,
		WndProc:    proc,
		ClsExtra:   clsExtra,
		WndExtra:   wndExtra,
		Instance:   inst,
		Icon:       icon,
		Cursor:     cursor,
		Background: background,
		MenuName:   menuName,
		ClassName:  className,
		IconSm:     iconSm,
	}
}

// MessageBox type flags.
const (
	MB_OK                = 0x00000000
	MB_OKCANCEL          = 0x00000001
	MB_ABORTRETRYIGNORE  = 0x00000002
	MB_YESNOCANCEL       = 0x00000003
	MB_YESNO             = 0x00000004
	MB_RETRYCANCEL       = 0x00000005
	MB_CANCELTRYCONTINUE = 0x00000006
	MB_ICONHAND          = 0x00000010
	MB_ICONQUESTION      = 0x00000020
	MB_ICONEXCLAMATION   = 0x00000030
	MB_ICONASTERISK      = 0x00000040
	MB_ICONWARNING       = MB_ICONEXCLAMATION
	MB_ICONERROR         = MB_ICONHAND
	MB_ICONINFORMATION   = MB_ICONASTERISK
	MB_ICONSTOP          = MB_ICONHAND
	MB_DEFBUTTON1        = 0x00000000
	MB_DEFBUTTON2        = 0x00000100
	MB_DEFBUTTON3        = 0x00000200
	MB_DEFBUTTON4        = 0x00000300
	MB_APPLMODAL         = 0x00000000
	MB_SYSTEMMODAL       = 0x00001000
	MB_TASKMODAL         = 0x00002000
	MB_SETFOREGROUND     = 0x00010000
	MB_TOPMOST           = 0x00040000
)

// MessageBox return values.
const (
	IDOK       = 1
	IDCANCEL   = 2
	IDABORT    = 3
	IDRETRY    = 4
	IDIGNORE   = 5
	IDYES      = 6
	IDNO       = 7
	IDTRYAGAIN = 10
	IDCONTINUE = 11
)

// Window styles.
const (
	WS_OVERLAPPED       = 0x00000000
	WS_POPUP            = 0x80000000
	WS_CHILD            = 0x40000000
	WS_MINIMIZE         = 0x20000000
	WS_VISIBLE          = 0x10000000
	WS_DISABLED         = 0x08000000
	WS_CLIPSIBLINGS     = 0x04000000
	WS_CLIPCHILDREN     = 0x02000000
	WS_MAXIMIZE         = 0x01000000
	WS_CAPTION          = 0x00C00000
	WS_BORDER           = 0x00800000
	WS_DLGFRAME         = 0x00400000
	WS_VSCROLL          = 0x00200000
	WS_HSCROLL          = 0x00100000
	WS_SYSMENU          = 0x00080000
	WS_THICKFRAME       = 0x00040000
	WS_SIZEBOX          = WS_THICKFRAME
	WS_MINIMIZEBOX      = 0x00020000
	WS_MAXIMIZEBOX      = 0x00010000
	WS_TABSTOP          = 0x00010000
	WS_OVERLAPPEDWINDOW = WS_OVERLAPPED | WS_CAPTION | WS_SYSMENU | WS_THICKFRAME | WS_MINIMIZEBOX | WS_MAXIMIZEBOX
	WS_POPUPWINDOW      = WS_POPUP | WS_BORDER | WS_SYSMENU
)

// Extended window styles.
const (
	WS_EX_DLGMODALFRAME    = 0x00000001
	WS_EX_TOPMOST          = 0x00000008
	WS_EX_ACCEPTFILES      = 0x00000010
	WS_EX_TRANSPARENT      = 0x00000020
	WS_EX_TOOLWINDOW       = 0x00000080
	WS_EX_WINDOWEDGE       = 0x00000100
	WS_EX_CLIENTEDGE       = 0x00000200
	WS_EX_APPWINDOW        = 0x00040000
	WS_EX_OVERLAPPEDWINDOW = WS_EX_WINDOWEDGE | WS_EX_CLIENTEDGE
)

// Class styles.
const (
	CS_VREDRAW     = 0x0001
	CS_HREDRAW     = 0x0002
	CS_DBLCLKS     = 0x0008
	CS_OWNDC       = 0x0020
	CS_CLASSDC     = 0x0040
	CS_PARENTDC    = 0x0080
	CS_NOCLOSE     = 0x0200
	CS_SAVEBITS    = 0x0800
	CS_GLOBALCLASS = 0x4000
)

// ShowWindow commands.
const (
	SW_HIDE            = 0
	SW_SHOWNORMAL      = 1
	SW_SHOWMINIMIZED   = 2
	SW_SHOWMAXIMIZED   = 3
	SW_SHOWNOACTIVATE  = 4
	SW_SHOW            = 5
	SW_MINIMIZE        = 6
	SW_SHOWMINNOACTIVE = 7
	SW_SHOWNA          = 8
	SW_RESTORE         = 9
	SW_SHOWDEFAULT     = 10
)

// CW_USEDEFAULT lets the system pick a window position or size.
const CW_USEDEFAULT = int32(-0x80000000)

// Flag tables map Win32 constant names to values.
var (
	MessageBoxFlags = map[string]uint32{
		"MB_OK": MB_OK, "MB_OKCANCEL": MB_OKCANCEL, "MB_ABORTRETRYIGNORE": MB_ABORTRETRYIGNORE,
		"MB_YESNOCANCEL": MB_YESNOCANCEL, "MB_YESNO": MB_YESNO, "MB_RETRYCANCEL": MB_RETRYCANCEL,
		"MB_CANCELTRYCONTINUE": MB_CANCELTRYCONTINUE,
		"MB_ICONHAND":          MB_ICONHAND, "MB_ICONQUESTION": MB_ICONQUESTION,
		"MB_ICONEXCLAMATION": MB_ICONEXCLAMATION, "MB_ICONASTERISK": MB_ICONASTERISK,
		"MB_ICONWARNING": MB_ICONWARNING, "MB_ICONERROR": MB_ICONERROR,
		"MB_ICONINFORMATION": MB_ICONINFORMATION, "MB_ICONSTOP": MB_ICONSTOP,
		"MB_DEFBUTTON1": MB_DEFBUTTON1, "MB_DEFBUTTON2": MB_DEFBUTTON2,
		"MB_DEFBUTTON3": MB_DEFBUTTON3, "MB_DEFBUTTON4": MB_DEFBUTTON4,
		"MB_APPLMODAL": MB_APPLMODAL, "MB_SYSTEMMODAL": MB_SYSTEMMODAL, "MB_TASKMODAL": MB_TASKMODAL,
		"MB_SETFOREGROUND": MB_SETFOREGROUND, "MB_TOPMOST": MB_TOPMOST,
	}

	WindowStyles = map[string]uint32{
		"WS_OVERLAPPED": WS_OVERLAPPED, "WS_POPUP": WS_POPUP, "WS_CHILD": WS_CHILD,
		"WS_MINIMIZE": WS_MINIMIZE, "WS_VISIBLE": WS_VISIBLE, "WS_DISABLED": WS_DISABLED,
		"WS_CLIPSIBLINGS": WS_CLIPSIBLINGS, "WS_CLIPCHILDREN": WS_CLIPCHILDREN,
		"WS_MAXIMIZE": WS_MAXIMIZE, "WS_CAPTION": WS_CAPTION, "WS_BORDER": WS_BORDER,
		"WS_DLGFRAME": WS_DLGFRAME, "WS_VSCROLL": WS_VSCROLL, "WS_HSCROLL": WS_HSCROLL,
		"WS_SYSMENU": WS_SYSMENU, "WS_THICKFRAME": WS_THICKFRAME, "WS_SIZEBOX": WS_SIZEBOX,
		"WS_MINIMIZEBOX": WS_MINIMIZEBOX, "WS_MAXIMIZEBOX": WS_MAXIMIZEBOX, "WS_TABSTOP": WS_TABSTOP,
		"WS_OVERLAPPEDWINDOW": WS_OVERLAPPEDWINDOW, "WS_POPUPWINDOW": WS_POPUPWINDOW,
	}

	ExWindowStyles = map[string]uint32{
		"WS_EX_DLGMODALFRAME": WS_EX_DLGMODALFRAME, "WS_EX_TOPMOST": WS_EX_TOPMOST,
		"WS_EX_ACCEPTFILES": WS_EX_ACCEPTFILES, "WS_EX_TRANSPARENT": WS_EX_TRANSPARENT,
		"WS_EX_TOOLWINDOW": WS_EX_TOOLWINDOW, "WS_EX_WINDOWEDGE": WS_EX_WINDOWEDGE,
		"WS_EX_CLIENTEDGE": WS_EX_CLIENTEDGE, "WS_EX_APPWINDOW": WS_EX_APPWINDOW,
		"WS_EX_OVERLAPPEDWINDOW": WS_EX_OVERLAPPEDWINDOW,
	}

	ClassStyles = map[string]uint32{
		"CS_VREDRAW": CS_VREDRAW, "CS_HREDRAW": CS_HREDRAW, "CS_DBLCLKS": CS_DBLCLKS,
		"CS_OWNDC": CS_OWNDC, "CS_CLASSDC": CS_CLASSDC, "CS_PARENTDC": CS_PARENTDC,
		"CS_NOCLOSE": CS_NOCLOSE, "CS_SAVEBITS": CS_SAVEBITS, "CS_GLOBALCLASS": CS_GLOBALCLASS,
	}

	ShowCommands = map[string]uint32{
		"SW_HIDE": SW_HIDE, "SW_SHOWNORMAL": SW_SHOWNORMAL, "SW_SHOWMINIMIZED": SW_SHOWMINIMIZED,
		"SW_SHOWMAXIMIZED": SW_SHOWMAXIMIZED, "SW_SHOWNOACTIVATE": SW_SHOWNOACTIVATE,
		"SW_SHOW": SW_SHOW, "SW_MINIMIZE": SW_MINIMIZE, "SW_SHOWMINNOACTIVE": SW_SHOWMINNOACTIVE,
		"SW_SHOWNA": SW_SHOWNA, "SW_RESTORE": SW_RESTORE, "SW_SHOWDEFAULT": SW_SHOWDEFAULT,
	}
)

// ParseFlags ORs together the named flags from table. Names are matched
// case-insensitively after trimming spaces; an empty list yields 0.
func ParseFlags(table map[string]uint32, names []string) (uint32, error) {
	var v uint32
	for _, name := range names {
		key := strings.ToUpper(strings.TrimSpace(name))
		f, ok := table[key]
		if !ok {
			return 0, fmt.Errorf("unknown flag %q (known: %s)", name, strings.Join(FlagNames(table), ", "))
		}
		v |= f
	}
	return v, nil
}

// FlagNames returns the sorted names in table.
func FlagNames(table map[string]uint32) []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ButtonName returns the ID* name for a MessageBox result.
func ButtonName(id int) string {
	switch id {
	case IDOK:
		return "IDOK"
	case IDCANCEL:
		return "IDCANCEL"
	case IDABORT:
		return "IDABORT"
	case IDRETRY:
		return "IDRETRY"
	case IDIGNORE:
		return "IDIGNORE"
	case IDYES:
		return "IDYES"
	case IDNO:
		return "IDNO"
	case IDTRYAGAIN:
		return "IDTRYAGAIN"
	case IDCONTINUE:
		return "IDCONTINUE"
	default:
		return fmt.Sprintf("%d", id)
	}
}
