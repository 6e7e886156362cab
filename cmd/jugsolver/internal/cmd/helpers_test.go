package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v3"
)

func TestInsertDefaultCommand(t *testing.T) {
	t.Parallel()

	commands := []*cli.Command{
		{Name: "solve"},
		{Name: "prompt"},
		{Name: "trace"},
		{Name: "serve"},
	}

	tests := []struct {
		args []string
		want []string
	}{
		{
			args: []string{""},
			want: []string{""},
		},
		{
			args: []string{"", "solve", "-a", "4"},
			want: []string{"", "solve", "-a", "4"},
		},
		{
			args: []string{"", "-a", "4", "-b", "3", "-g", "2"},
			want: []string{"", "solve", "-a", "4", "-b", "3", "-g", "2"},
		},
		{
			args: []string{"", "trace", "-a", "4"},
			want: []string{"", "trace", "-a", "4"},
		},
		{
			args: []string{"", "--help"},
			want: []string{"", "--help"},
		},
		{
			args: []string{"", "help"},
			want: []string{"", "help"},
		},
		{
			args: []string{"", "--version"},
			want: []string{"", "--version"},
		},
	}

	for _, tt := range tests {
		argsCopy := append([]string{}, tt.args...)
		got := insertDefaultCommand(tt.args, commands, "solve")
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("insertDefaultCommand(%v) mismatch (-want +got):\n%s", tt.args, diff)
		}
		if diff := cmp.Diff(argsCopy, tt.args); diff != "" {
			t.Errorf("insertDefaultCommand() modified its input (-want +got):\n%s", diff)
		}
	}
}

func TestGetAllCommands_IncludesAliases(t *testing.T) {
	t.Parallel()

	got := getAllCommands([]*cli.Command{{Name: "serve", Aliases: []string{"http"}}})
	if len(got) < 2 || got[0] != "serve" || got[1] != "http" {
		t.Errorf("getAllCommands() = %v", got)
	}
}
