package cli

import (
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{
			name:    "no commit info",
			version: "dev",
			commit:  "none",
			want:    "dev",
		},
		{
			name:    "full commit hash is shortened",
			version: "1.2.0",
			commit:  "0123456789abcdef",
			want:    "1.2.0 (commit: 01234567, built: today)",
		},
		{
			name:    "short commit hash is kept whole",
			version: "1.2.0",
			commit:  "abc1234",
			want:    "1.2.0 (commit: abc1234, built: today)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			a.SetVersion(tt.version, tt.commit, "today")
			if a.cli.Version != tt.want {
				t.Errorf("SetVersion() = %q, want %q", a.cli.Version, tt.want)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	a := New()

	var names []string
	for _, cmd := range a.cli.Commands {
		names = append(names, cmd.Name)
	}

	for _, want := range []string{"run", "opponents", "report", "check"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered (have %s)", want, strings.Join(names, ", "))
		}
	}
}
