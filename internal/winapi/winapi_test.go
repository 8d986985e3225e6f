package winapi

import (
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		table map[string]uint32
		in    []string
		want  uint32
	}{
		{"empty", MessageBoxFlags, nil, 0},
		{"single", MessageBoxFlags, []string{"MB_YESNO"}, MB_YESNO},
		{"combined", MessageBoxFlags, []string{"MB_OKCANCEL", "MB_ICONERROR", "MB_DEFBUTTON2"}, MB_OKCANCEL | MB_ICONERROR | MB_DEFBUTTON2},
		{"case and space", MessageBoxFlags, []string{" mb_iconinformation "}, MB_ICONINFORMATION},
		{"overlapped window", WindowStyles, []string{"WS_OVERLAPPEDWINDOW", "WS_VISIBLE"}, WS_OVERLAPPEDWINDOW | WS_VISIBLE},
		{"class", ClassStyles, []string{"CS_HREDRAW", "CS_VREDRAW"}, CS_HREDRAW | CS_VREDRAW},
		{"ex", ExWindowStyles, []string{"WS_EX_WINDOWEDGE"}, WS_EX_WINDOWEDGE},
		{"show", ShowCommands, []string{"SW_SHOWDEFAULT"}, SW_SHOWDEFAULT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.table, tt.in)
			if err != nil {
				t.Fatalf("ParseFlags error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFlags(%v) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	_, err := ParseFlags(MessageBoxFlags, []string{"MB_OK", "WS_VISIBLE"})
	if err == nil {
		t.Fatal("expected error for flag from another table")
	}
	if !strings.Contains(err.Error(), "WS_VISIBLE") {
		t.Errorf("error %q does not name the bad flag", err)
	}
}

func TestOverlappedWindowComposition(t *testing.T) {
	want := uint32(0x00CF0000)
	if WS_OVERLAPPEDWINDOW != want {
		t.Errorf("WS_OVERLAPPEDWINDOW = %#x, want %#x", WS_OVERLAPPEDWINDOW, want)
	}
	if CW_USEDEFAULT != -2147483648 {
		t.Errorf("CW_USEDEFAULT = %d", CW_USEDEFAULT)
	}
}

func TestNewWindowClass(t *testing.T) {
	called := false
	proc := func(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
		called = true
		return 0
	}

	wc := NewWindowClass(CS_HREDRAW|CS_VREDRAW, proc, 0, 8, 0x400000, 1, 2, 6, "", "PfioWindow", 3)

	if wc.Style != CS_HREDRAW|CS_VREDRAW {
		t.Errorf("Style = %#x", wc.Style)
	}
	if wc.WndExtra != 8 || wc.ClsExtra != 0 {
		t.Errorf("extras = %d/%d, want 0/8", wc.ClsExtra, wc.WndExtra)
	}
	if wc.Instance != 0x400000 || wc.Icon != 1 || wc.Cursor != 2 || wc.Background != 6 || wc.IconSm != 3 {
		t.Errorf("handles not passed through: %+v", wc)
	}
	if wc.ClassName != "PfioWindow" || wc.MenuName != "" {
		t.Errorf("names = %q/%q", wc.ClassName, wc.MenuName)
	}
	wc.WndProc(0, 0, 0, 0)
	if !called {
		t.Error("WndProc not passed through")
	}
}

func TestFlagNamesSorted(t *testing.T) {
	names := FlagNames(ShowCommands)
	if len(names) != len(ShowCommands) {
		t.Fatalf("len = %d, want %d", len(names), len(ShowCommands))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %q > %q", names[i-1], names[i])
		}
	}
}

func TestButtonName(t *testing.T) {
	tests := map[int]string{
		IDOK:     "IDOK",
		IDCANCEL: "IDCANCEL",
		IDYES:    "IDYES",
		IDNO:     "IDNO",
		42:       "42",
	}
	for id, want := range tests {
		if got := ButtonName(id); got != want {
			t.Errorf("ButtonName(%d) = %q, want %q", id, got, want)
		}
	}
}
