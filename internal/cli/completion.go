package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/page/sink"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for folio.

  $ source <(folio completion bash)
  $ folio completion zsh > "${fpath[1]}/_folio"
  $ folio completion fish > ~/.config/fish/completions/folio.fish
  PS> folio completion powershell | Out-String | Invoke-Expression

Completions include output formats for --format and section anchors for
preview --section.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}

// registerFlagCompletions adds value completion for flags with a fixed set
// of choices.
func registerFlagCompletions(root *cobra.Command) {
	fixed := func(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	files := func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml", "yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	}

	for _, cmd := range root.Commands() {
		if cmd.Flags().Lookup("format") != nil {
			_ = cmd.RegisterFlagCompletionFunc("format", fixed(sink.Formats))
		}
		if cmd.Flags().Lookup("section") != nil {
			_ = cmd.RegisterFlagCompletionFunc("section", fixed(browsableSections()))
		}
		if cmd.Flags().Lookup("profile") != nil {
			_ = cmd.RegisterFlagCompletionFunc("profile", files)
		}
	}
}
