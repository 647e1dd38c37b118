// internal/grub/cmdline.go
package grub

import (
	"fmt"
	"strings"
)

const cmdlineVar = "GRUB_CMDLINE_LINUX_DEFAULT"

// SetResumeParam rewrites the GRUB_CMDLINE_LINUX_DEFAULT assignment in a
// /etc/default/grub style file so that its value carries exactly one
// resume=UUID=<uuid> token and no resume_offset token. Every other line and
// every other token is preserved in order. The file is parsed into lines and
// the command line into tokens; no raw-text substitution happens, so quoting
// cannot be corrupted.
//
// Returns an error if the variable assignment is not present; the tool never
// invents a variable the distribution did not ship.
func SetResumeParam(content, resumeUUID string) (string, error) {
	lines := strings.Split(content, "\n")
	found := false

	for i, line := range lines {
		name, value, quote, ok := parseAssignment(line)
		if !ok || name != cmdlineVar {
			continue
		}

		tokens := strings.Fields(value)
		kept := tokens[:0]
		for _, tok := range tokens {
			if strings.HasPrefix(tok, "resume=") || strings.HasPrefix(tok, "resume_offset=") {
				continue
			}
			kept = append(kept, tok)
		}
		kept = append(kept, "resume=UUID="+resumeUUID)

		lines[i] = fmt.Sprintf("%s=%c%s%c", cmdlineVar, quote, strings.Join(kept, " "), quote)
		found = true
		break
	}

	if !found {
		return "", fmt.Errorf("%s not found in bootloader config", cmdlineVar)
	}
	return strings.Join(lines, "\n"), nil
}

// parseAssignment splits a shell-style NAME="value" line. Commented and
// non-assignment lines report ok=false. Unquoted values are accepted and
// re-serialized double-quoted.
func parseAssignment(line string) (name, value string, quote byte, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", 0, false
	}
	eq := strings.IndexByte(trimmed, '=')
	if eq <= 0 {
		return "", "", 0, false
	}
	name = trimmed[:eq]
	raw := trimmed[eq+1:]

	quote = '"'
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		quote = raw[0]
		raw = raw[1 : len(raw)-1]
	}
	return name, raw, quote, true
}

// ResumeUUID extracts the uuid from the resume=UUID= token of the command
// line variable, or "" when none is configured.
func ResumeUUID(content string) string {
	for _, line := range strings.Split(content, "\n") {
		name, value, _, ok := parseAssignment(line)
		if !ok || name != cmdlineVar {
			continue
		}
		for _, tok := range strings.Fields(value) {
			if rest, found := strings.CutPrefix(tok, "resume=UUID="); found {
				return rest
			}
		}
	}
	return ""
}
