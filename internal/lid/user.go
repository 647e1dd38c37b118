// internal/lid/user.go
package lid

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

// User identifies the non-privileged user who invoked the tool via sudo.
// Per-user artifacts (gsettings, Regolith config) belong to this user, not
// to root.
type User struct {
	Name string
	Home string
	UID  int
	GID  int
}

// LookupUser resolves a username through the passwd database.
func LookupUser(ctx context.Context, exec executor.Executor, name string) (*User, error) {
	out, err := exec.Run(ctx, "getent passwd "+name)
	if err != nil {
		return nil, fmt.Errorf("looking up user %s: %w", name, err)
	}
	fields := strings.Split(strings.TrimSpace(out), ":")
	if len(fields) < 6 {
		return nil, fmt.Errorf("malformed passwd entry for %s", name)
	}
	uid, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("malformed uid for %s: %w", name, err)
	}
	gid, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("malformed gid for %s: %w", name, err)
	}
	return &User{Name: name, Home: fields[5], UID: uid, GID: gid}, nil
}
