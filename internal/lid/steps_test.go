// internal/lid/steps_test.go
package lid

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

var alice = &User{Name: "alice", Home: "/home/alice", UID: 1000, GID: 1000}

func runStep(t *testing.T, mock *executor.MockExecutor, step Step) []StepResult {
	t.Helper()
	results, err := Configure(context.Background(), mock, []Step{step})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return results
}

func TestPolkitStep_WritesOnce(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.Dirs["/etc/polkit-1/rules.d"] = true
	path := "/etc/polkit-1/rules.d/10-enable-hibernate.rules"

	runStep(t, mock, PolkitStep("/etc/polkit-1/rules.d"))
	first, ok := mock.Files[path]
	if !ok {
		t.Fatal("expected rule file to be written")
	}
	if !strings.Contains(string(first), "org.freedesktop.login1.hibernate") {
		t.Fatalf("unexpected rule content: %s", first)
	}

	// A second run must leave the file byte-identical and write nothing.
	results := runStep(t, mock, PolkitStep("/etc/polkit-1/rules.d"))
	if !results[0].Skipped || results[0].NotApplicable {
		t.Fatal("expected second run to skip as already configured")
	}
	if string(mock.Files[path]) != string(first) {
		t.Fatal("rule file was rewritten")
	}
}

func TestPolkitStep_NoRulesDir(t *testing.T) {
	mock := executor.NewMockExecutor()

	results := runStep(t, mock, PolkitStep("/etc/polkit-1/rules.d"))
	if !results[0].Skipped || !results[0].NotApplicable {
		t.Fatal("expected not-applicable skip when rules dir is absent")
	}
	if len(mock.WriteCalls()) != 0 {
		t.Fatalf("expected no writes, got %v", mock.WriteCalls())
	}
}

func TestLogindStep_AlwaysOverwrites(t *testing.T) {
	mock := executor.NewMockExecutor()
	path := "/etc/systemd/logind.conf.d/90-lid-hibernate.conf"
	mock.Files[path] = []byte("[Login]\nHandleLidSwitch=suspend\n")

	runStep(t, mock, LogindStep("/etc/systemd/logind.conf.d"))

	content := string(mock.Files[path])
	want := "[Login]\nHandleLidSwitch=hibernate\nHandleLidSwitchExternalPower=hibernate\nHandleLidSwitchDocked=ignore\n"
	if content != want {
		t.Fatalf("unexpected drop-in content:\n%s", content)
	}
}

func TestGsettingsStep_BestEffort(t *testing.T) {
	mock := executor.NewMockExecutor()
	acCmd := "sudo -u alice DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/1000/bus gsettings set org.gnome.settings-daemon.plugins.power lid-close-ac-action 'hibernate'"
	mock.RunErrors[acCmd] = fmt.Errorf("no session bus")

	results, err := Configure(context.Background(), mock, []Step{GsettingsStep(alice)})
	if err != nil {
		t.Fatalf("best-effort failure must not abort: %v", err)
	}
	if results[0].Error == nil {
		t.Fatal("expected recorded error on best-effort step")
	}
}

func TestGsettingsStep_ToolAbsent(t *testing.T) {
	mock := executor.NewMockExecutor()
	mock.RunErrors["command -v gsettings"] = fmt.Errorf("not found")

	results, err := Configure(context.Background(), mock, []Step{GsettingsStep(alice)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Skipped || !results[0].NotApplicable {
		t.Fatal("expected not-applicable skip when gsettings is absent")
	}
}

func TestXresourcesStep_AppendAndIdempotence(t *testing.T) {
	mock := executor.NewMockExecutor()
	path := "/home/alice/.config/regolith3/Xresources"
	mock.Files[path] = []byte("wm.gaps.inner.size: 5\nwm.lidclose.action.power: SUSPEND\n")

	runStep(t, mock, XresourcesStep(alice))

	content := string(mock.Files[path])
	if !strings.Contains(content, "wm.gaps.inner.size: 5") {
		t.Fatal("unrelated lines must survive")
	}
	if strings.Contains(content, "SUSPEND") {
		t.Fatal("stale lidclose lines must be removed")
	}
	if strings.Count(content, "wm.lidclose.action.power: HIBERNATE") != 1 ||
		strings.Count(content, "wm.lidclose.action.battery: HIBERNATE") != 1 {
		t.Fatalf("expected exactly one of each lidclose line:\n%s", content)
	}

	// Both lines present verbatim: the second run must not touch the file.
	writesBefore := len(mock.WriteCalls())
	results := runStep(t, mock, XresourcesStep(alice))
	if !results[0].Skipped {
		t.Fatal("expected second run to skip")
	}
	if len(mock.WriteCalls()) != writesBefore {
		t.Fatal("expected no further writes")
	}
}

func TestXresourcesStep_CreatesFileAndChowns(t *testing.T) {
	mock := executor.NewMockExecutor()
	path := "/home/alice/.config/regolith3/Xresources"

	runStep(t, mock, XresourcesStep(alice))

	want := "wm.lidclose.action.power: HIBERNATE\nwm.lidclose.action.battery: HIBERNATE\n"
	if string(mock.Files[path]) != want {
		t.Fatalf("unexpected fresh file content: %q", mock.Files[path])
	}

	chowned := false
	for _, c := range mock.Calls {
		if c.Method == "Run" && strings.HasPrefix(c.Args[0].(string), "chown 1000:1000 ") {
			chowned = true
		}
	}
	if !chowned {
		t.Fatal("expected ownership handed back to the user")
	}
}

func TestConfigure_FailFast(t *testing.T) {
	mock := executor.NewMockExecutor()
	boom := Step{
		Name:  "boom",
		Label: "Exploding step",
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) { return false, nil },
		Apply: func(ctx context.Context, exec executor.Executor) error { return fmt.Errorf("boom") },
	}
	never := Step{
		Name:  "never",
		Label: "Should not run",
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
			t.Fatal("later step must not run after a fatal failure")
			return false, nil
		},
		Apply: func(ctx context.Context, exec executor.Executor) error { return nil },
	}

	_, err := Configure(context.Background(), mock, []Step{boom, never})
	if err == nil {
		t.Fatal("expected error")
	}
}
