package identity

import (
	"errors"
	"os"
	"os/exec"
	"testing"
)

func TestUsernameFromScratch(t *testing.T) {
	tests := []struct {
		scratch string
		want    string
	}{
		{"/scratch/user/alice", "alice"},
		{"/scratch/user/alice/", "alice"},
		{"/scratch/user/bob///", "bob"},
		{"/mnt/work", "work"},
	}

	for _, tt := range tests {
		t.Run(tt.scratch, func(t *testing.T) {
			got := usernameFromScratch(tt.scratch)
			if got != tt.want {
				t.Errorf("usernameFromScratch(%q) = %q, want %q", tt.scratch, got, tt.want)
			}
		})
	}
}

func TestParseGroups(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"plain", "staff hpc teamx\n", []string{"staff", "hpc", "teamx"}},
		{"with user prefix", "alice : staff hpc\n", []string{"staff", "hpc"}},
		{"duplicates", "staff hpc staff\n", []string{"staff", "hpc"}},
		{"empty", "\n", []string{}},
		{"extra whitespace", "  staff\thpc  \n", []string{"staff", "hpc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGroups(tt.out)
			if len(got) != len(tt.want) {
				t.Fatalf("parseGroups(%q) = %v, want %v", tt.out, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("group[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolve_MissingScratch(t *testing.T) {
	orig, had := os.LookupEnv(EnvVarScratch)
	os.Unsetenv(EnvVarScratch)
	defer func() {
		if had {
			os.Setenv(EnvVarScratch, orig)
		}
	}()

	_, err := Resolve()
	if !errors.Is(err, ErrScratchUnset) {
		t.Errorf("Resolve() error = %v, want ErrScratchUnset", err)
	}
}

func TestResolve(t *testing.T) {
	if _, err := exec.LookPath("groups"); err != nil {
		t.Skip("groups command not available")
	}

	orig, had := os.LookupEnv(EnvVarScratch)
	os.Setenv(EnvVarScratch, "/scratch/user/carol")
	defer func() {
		if had {
			os.Setenv(EnvVarScratch, orig)
		} else {
			os.Unsetenv(EnvVarScratch)
		}
	}()

	id, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id.Username != "carol" {
		t.Errorf("username = %q, want %q", id.Username, "carol")
	}
	if id.Scratch != "/scratch/user/carol" {
		t.Errorf("scratch = %q, want %q", id.Scratch, "/scratch/user/carol")
	}
}
