//go:build windows

package winapi

import "testing"

func TestNewInstance(t *testing.T) {
	inst, err := NewInstance()
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	if inst.Module == 0 {
		t.Error("Module handle is NULL")
	}
	if inst.CmdLine == "" {
		t.Error("CmdLine is empty")
	}
}

func TestRegisterAndCreateHiddenWindow(t *testing.T) {
	inst, err := NewInstance()
	if err != nil {
		t.Fatal(err)
	}
	wc := NewWindowClass(CS_HREDRAW|CS_VREDRAW, nil, 0, 0, inst.Module, 0, 0, 0, "", "PfioTestWindow", 0)
	if _, err := RegisterClass(wc); err != nil {
		t.Fatalf("RegisterClass: %v", err)
	}

	hwnd, err := CreateWindow(WindowSpec{
		ClassName:  wc.ClassName,
		WindowName: "pfio test",
		Style:      WS_OVERLAPPEDWINDOW,
		X:          CW_USEDEFAULT,
		Y:          CW_USEDEFAULT,
		Width:      200,
		Height:     100,
		Instance:   inst.Module,
	})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	if err := DestroyWindow(hwnd); err != nil {
		t.Errorf("DestroyWindow: %v", err)
	}
}

func TestWndProcPerClass(t *testing.T) {
	inst, err := NewInstance()
	if err != nil {
		t.Fatal(err)
	}
	const msgPing = 0x0400 + 1 // WM_USER + 1
	sendMessage := user32.NewProc("SendMessageW")

	got := map[string]int{}
	for _, name := range []string{"PfioProcA", "PfioProcB"} {
		proc := func(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
			if msg == msgPing {
				got[name]++
				return 7
			}
			return DefWindowProc(hwnd, msg, wParam, lParam)
		}
		wc := NewWindowClass(0, proc, 0, 0, inst.Module, 0, 0, 0, "", name, 0)
		if _, err := RegisterClass(wc); err != nil {
			t.Fatalf("RegisterClass(%s): %v", name, err)
		}
		hwnd, err := CreateWindow(WindowSpec{ClassName: name, WindowName: name, Instance: inst.Module})
		if err != nil {
			t.Fatalf("CreateWindow(%s): %v", name, err)
		}
		ret, _, _ := sendMessage.Call(uintptr(hwnd), msgPing, 0, 0)
		if ret != 7 {
			t.Errorf("SendMessage(%s) = %d, want 7", name, ret)
		}
		if err := DestroyWindow(hwnd); err != nil {
			t.Errorf("DestroyWindow(%s): %v", name, err)
		}
	}
	if got["PfioProcA"] != 1 || got["PfioProcB"] != 1 {
		t.Errorf("procedure calls = %v, want one per class", got)
	}
}
