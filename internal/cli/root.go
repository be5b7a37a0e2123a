package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/ssh-connect/internal/config"
	"github.com/rileyhilliard/ssh-connect/internal/errors"
	"github.com/rileyhilliard/ssh-connect/internal/ui"
)

// settingsViper holds flag > environment > default resolution for Settings.
var settingsViper = config.NewViper()

// Root command flags
var (
	listFlag   bool
	editFlag   bool
	themesFlag bool
)

// flagKeys maps settings keys to the flags that override them.
var flagKeys = map[string]string{
	config.KeyHostsFile: "hosts-file",
	config.KeySort:      "sort",
	config.KeyTheme:     "theme",
}

// rootCmd is ssh-connect itself: pick a host and open a shell on it.
var rootCmd = &cobra.Command{
	Use:   "ssh-connect [index]",
	Short: "Pick a host from your hosts list and ssh into it",
	Long: `ssh-connect reads a YAML list of hosts, resolves their names and addresses,
and opens an ssh session to the one you pick.

If a host refuses key-based login, ssh-connect offers to upload one of your
public keys with ssh-copy-id before connecting.

Hosts file (default ~/.ssh_hosts.yml):
  - host: 192.168.1.10
    name: NAS
    user: admin
  - host: build01.example.com
    port: 2222
    skip_key_setup: true

Examples:
  ssh-connect            # show the menu
  ssh-connect 3          # connect to host number 3
  ssh-connect --list     # print the numbered list
  ssh-connect --sort name --theme nord`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions{list: listFlag, edit: editFlag, themes: themesFlag}
		if len(args) == 1 {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			opts.index, opts.hasIndex = n, true
		}

		settings, err := config.LoadSettings(settingsViper)
		if err != nil {
			return err
		}

		return newApp(settings, cmd.OutOrStdout()).run(cmd.Context(), opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&listFlag, "list", "l", false, "print the numbered host list and exit")
	f.BoolVarP(&editFlag, "edit", "e", false, "open the hosts file in $EDITOR")
	f.BoolVar(&themesFlag, "themes", false, "list available color themes")
	f.StringP("hosts-file", "f", "", "hosts file (env SSH_CONNECT_HOSTS_FILE, default ~/.ssh_hosts.yml)")
	f.String("sort", "", "sort order: ip or name (env SSH_CONNECT_SORT, default ip)")
	f.String("theme", "", "color theme (env SSH_CONNECT_THEME, default material)")

	if err := config.BindFlags(settingsViper, f, flagKeys); err != nil {
		panic(err)
	}
}

// parseIndex reads the positional host number.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a host number", arg),
			"Run ssh-connect --list to see the numbers.")
	}
	return n, nil
}

// Execute runs the root command and exits non-zero on failure. Ctrl+C and
// SIGTERM cancel the context; cancelled prompts exit 0.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if code := exitCode(err); code != 0 {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(code)
	}
}

// exitCode maps a command error to the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case ui.IsAborted(err), stderrors.Is(err, context.Canceled):
		return 0
	default:
		return 1
	}
}
