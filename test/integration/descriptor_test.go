//go:build integration

package integration_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pfio-labs/pfio/internal/descriptor"
	"github.com/pfio-labs/pfio/internal/winapi"
	"github.com/spf13/afero"
)

const windowDescriptor = `class:
  name: IntegrationWindow
  style: [CS_HREDRAW, CS_VREDRAW]
window:
  title: Integration
  style: [WS_OVERLAPPEDWINDOW]
  width: 320
  height: 200
message:
  text: Done.
  flags: [MB_OK]
`

// TestDescriptorFromDisk loads a descriptor from the real filesystem and
// resolves it against a fixed set of startup parameters.
func TestDescriptorFromDisk(t *testing.T) {
	env := setupTestEnv(t)
	path := filepath.Join(env.WorkDir, "window.yaml")
	writeFile(t, path, windowDescriptor)

	d, err := descriptor.Load(afero.NewOsFs(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	inst := winapi.Instance{Module: 0x400000, CmdShow: winapi.SW_SHOWDEFAULT}
	r, err := d.Resolve(inst, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Window.X != winapi.CW_USEDEFAULT {
		t.Errorf("X = %d, want CW_USEDEFAULT", r.Window.X)
	}
	if r.Window.Width != 320 {
		t.Errorf("Width = %d, want 320", r.Window.Width)
	}
	if r.Show != winapi.SW_SHOWDEFAULT {
		t.Errorf("Show = %d, want startup show command", r.Show)
	}
	if r.Window.Instance != inst.Module || r.Class.Instance != inst.Module {
		t.Errorf("instance handle not propagated: window=%#x class=%#x", r.Window.Instance, r.Class.Instance)
	}
}

// TestWindowCallsOnThisPlatform exercises the startup parameters call. Off
// Windows every windowing call reports ErrUnsupported.
func TestWindowCallsOnThisPlatform(t *testing.T) {
	inst, err := winapi.NewInstance()
	if !winapi.Supported() {
		if !errors.Is(err, errors.ErrUnsupported) {
			t.Errorf("NewInstance err = %v, want ErrUnsupported", err)
		}
		if _, err := winapi.MessageBox(0, "text", "caption", winapi.MB_OK); !errors.Is(err, errors.ErrUnsupported) {
			t.Errorf("MessageBox err = %v, want ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	if inst.Module == 0 {
		t.Error("NewInstance returned a zero module handle")
	}
}
