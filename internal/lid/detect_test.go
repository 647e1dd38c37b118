// internal/lid/detect_test.go
package lid

import (
	"context"
	"fmt"
	"testing"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

func desktopMock() *executor.MockExecutor {
	mock := executor.NewMockExecutor()
	mock.ReadErrors[chassisTypePath] = fmt.Errorf("no such file")
	mock.RunErrors["ls /sys/class/power_supply"] = fmt.Errorf("no such directory")
	return mock
}

func TestIsLaptop_ChassisType(t *testing.T) {
	for _, chassis := range []string{"8", "9", "10", "14", "30", "31", "32"} {
		mock := desktopMock()
		delete(mock.ReadErrors, chassisTypePath)
		mock.Files[chassisTypePath] = []byte(chassis + "\n")

		if !IsLaptop(context.Background(), mock) {
			t.Fatalf("chassis type %s should detect as laptop", chassis)
		}
	}
}

func TestIsLaptop_DesktopChassis(t *testing.T) {
	mock := desktopMock()
	delete(mock.ReadErrors, chassisTypePath)
	mock.Files[chassisTypePath] = []byte("3\n")

	if IsLaptop(context.Background(), mock) {
		t.Fatal("desktop chassis without lid or battery should not detect as laptop")
	}
}

func TestIsLaptop_LidSwitchAlone(t *testing.T) {
	mock := desktopMock()
	mock.Dirs[lidSwitchPath] = true

	if !IsLaptop(context.Background(), mock) {
		t.Fatal("lid switch alone should detect as laptop")
	}
}

func TestIsLaptop_BatteryAlone(t *testing.T) {
	mock := desktopMock()
	delete(mock.RunErrors, "ls /sys/class/power_supply")
	mock.RunOutputs["ls /sys/class/power_supply"] = "AC\nBAT0\n"

	if !IsLaptop(context.Background(), mock) {
		t.Fatal("battery alone should detect as laptop")
	}
}

func TestIsLaptop_ACOnly(t *testing.T) {
	mock := desktopMock()
	delete(mock.RunErrors, "ls /sys/class/power_supply")
	mock.RunOutputs["ls /sys/class/power_supply"] = "AC\n"

	if IsLaptop(context.Background(), mock) {
		t.Fatal("AC supply without battery should not detect as laptop")
	}
}

func TestHasLidSwitch(t *testing.T) {
	mock := desktopMock()
	if HasLidSwitch(context.Background(), mock) {
		t.Fatal("expected no lid switch")
	}

	mock.Dirs[lidSwitchPath] = true
	if !HasLidSwitch(context.Background(), mock) {
		t.Fatal("expected lid switch")
	}
}

func TestRegolithPresent(t *testing.T) {
	home := "/home/alice"

	mock := executor.NewMockExecutor()
	mock.RunErrors["command -v regolith-session"] = fmt.Errorf("not found")
	mock.RunErrors["dpkg -s regolith-desktop"] = fmt.Errorf("not installed")
	if RegolithPresent(context.Background(), mock, home) {
		t.Fatal("expected no regolith")
	}

	// Any single signal is sufficient.
	mock.Dirs[home+"/.config/regolith3"] = true
	if !RegolithPresent(context.Background(), mock, home) {
		t.Fatal("config dir should be sufficient")
	}

	mock = executor.NewMockExecutor()
	mock.RunErrors["dpkg -s regolith-desktop"] = fmt.Errorf("not installed")
	mock.RunOutputs["command -v regolith-session"] = "/usr/bin/regolith-session\n"
	if !RegolithPresent(context.Background(), mock, home) {
		t.Fatal("session binary should be sufficient")
	}

	mock = executor.NewMockExecutor()
	mock.RunErrors["command -v regolith-session"] = fmt.Errorf("not found")
	mock.RunOutputs["dpkg -s regolith-desktop"] = "Status: install ok installed\n"
	if !RegolithPresent(context.Background(), mock, home) {
		t.Fatal("installed package should be sufficient")
	}
}
