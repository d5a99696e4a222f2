package cmd

import (
	"fmt"
	"slices"
	"strings"

	"appserve/core/loader"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [SETTINGS_PATH]",
	Short: "Load a settings module without serving it",
	Long: `Runs locate, import and merge exactly as run does, then prints the
resolved module, its search roots, the importer's search path and the
installed apps.`,
	Args: zeroOrOneArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := bootstrap(settingsArg(args), zap.NewNop())
		if err != nil {
			return err
		}
		live, resolved := proj.settings, proj.resolved

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Settings module: %s\n", resolved.ModuleName)
		fmt.Fprintln(out, "Search roots:")
		for _, root := range resolved.SearchRoots {
			fmt.Fprintf(out, "  %s\n", root)
		}
		fmt.Fprintln(out, "Search path:")
		for _, dir := range proj.importer.SearchPath() {
			fmt.Fprintf(out, "  %s\n", dir)
		}
		if live.TimeZone != "" {
			fmt.Fprintf(out, "Time zone: %s\n", live.TimeZone)
		}

		registered := loader.Registered()
		var missing []string
		fmt.Fprintln(out, "Installed apps:")
		for _, app := range live.InstalledApps {
			if slices.Contains(registered, app) {
				fmt.Fprintf(out, "  %s\n", app)
				continue
			}
			fmt.Fprintf(out, "  %s (not registered)\n", app)
			missing = append(missing, app)
		}

		if err := resolved.Validate(); err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", loader.ErrAppNotRegistered, strings.Join(missing, ", "))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
