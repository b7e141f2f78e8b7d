package cli

import (
	"context"
	"strings"
	"testing"
)

func TestRenderOutline(t *testing.T) {
	doc := testDocument()
	out := renderOutline(doc)

	for _, want := range []string{"Anchor", "Units", "#top", "#work", "#community", "#tech", "#connect", "Footer"} {
		if !strings.Contains(out, want) {
			t.Errorf("outline missing %q", want)
		}
	}
	if !strings.Contains(out, "18 units across 4 sections") {
		t.Errorf("outline summary wrong:\n%s", out)
	}
}

func TestRootCommand(t *testing.T) {
	root := New(&strings.Builder{}, LogInfo).RootCommand()

	want := map[string]bool{"build": false, "serve": false, "preview": false, "sections": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVerboseFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	c := New(&strings.Builder{}, LogInfo)
	root := c.RootCommand()
	root.SetContext(context.Background())

	if err := root.PersistentFlags().Parse([]string{"-v"}); err != nil {
		t.Fatal(err)
	}
	if err := c.initConfig(root); err != nil {
		t.Fatalf("initConfig() error: %v", err)
	}
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestFlagCompletions(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"build", "--format", ""}, []string{"html", "json", "md"}},
		{[]string{"preview", "--section", ""}, []string{"work", "community", "tech", "connect"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			root := New(&strings.Builder{}, LogInfo).RootCommand()
			var out strings.Builder
			root.SetOut(&out)
			root.SetArgs(append([]string{"__complete"}, tt.args...))

			if err := root.Execute(); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w+"\n") {
					t.Errorf("completions missing %q:\n%s", w, out.String())
				}
			}
			if strings.Contains(out.String(), "top\n") {
				t.Error("hero anchor should not be offered")
			}
		})
	}
}
