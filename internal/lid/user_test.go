// internal/lid/user_test.go
package lid

import (
	"context"
	"fmt"
	"testing"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

func TestLookupUser(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunOutputs["getent passwd alice"] = "alice:x:1000:1000:Alice,,,:/home/alice:/bin/bash\n"

	u, err := LookupUser(context.Background(), mock, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "alice" || u.Home != "/home/alice" || u.UID != 1000 || u.GID != 1000 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestLookupUser_Unknown(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunErrors["getent passwd ghost"] = fmt.Errorf("exit status 2")

	if _, err := LookupUser(context.Background(), mock, "ghost"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestLookupUser_Malformed(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunOutputs["getent passwd broken"] = "broken:x:abc\n"

	if _, err := LookupUser(context.Background(), mock, "broken"); err == nil {
		t.Fatal("expected error for malformed entry")
	}
}

func TestSteps_Assembly(t *testing.T) {
	ctx := context.Background()

	// No user: only the system-level steps.
	mock := executor.NewMockExecutor()
	mock.RunErrors["command -v regolith-session"] = fmt.Errorf("not found")
	mock.RunErrors["dpkg -s regolith-desktop"] = fmt.Errorf("not installed")
	steps := Steps(ctx, mock, nil, "/etc/systemd/logind.conf.d", "/etc/polkit-1/rules.d")
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps without a user, got %d", len(steps))
	}

	// User without Regolith: gsettings joins, Xresources does not.
	steps = Steps(ctx, mock, alice, "/etc/systemd/logind.conf.d", "/etc/polkit-1/rules.d")
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps without regolith, got %d", len(steps))
	}

	// User with Regolith: all four.
	mock.Dirs["/home/alice/.config/regolith3"] = true
	steps = Steps(ctx, mock, alice, "/etc/systemd/logind.conf.d", "/etc/polkit-1/rules.d")
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps with regolith, got %d", len(steps))
	}
	if steps[3].Name != "xresources" {
		t.Fatalf("expected xresources last, got %s", steps[3].Name)
	}
}
