// Command yalgen compiles a YAL lexical spec file into a minimized DFA,
// grounded on original_source/app.py's argparse-driven main and the
// cobra-based CLI harness style used across the example pack.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/chamale-rac/xcompi-c/internal/driver"
	"github.com/chamale-rac/xcompi-c/internal/errjournal"
)

func main() {
	var artifactDir string
	var drawSubtreesRaw string

	root := &cobra.Command{
		Use:   "yalgen <spec_path> <artifact_dir> <draw_subtrees>",
		Short: "Compile a YAL lexical spec into a minimized DFA",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath := args[0]
			artifactDir = args[1]
			drawSubtreesRaw = args[2]

			drawSubtrees, err := str2bool(drawSubtreesRaw)
			if err != nil {
				return err
			}

			run(specPath, artifactDir, drawSubtrees)
			return nil
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		gologger.Error().Msgf("%v", err)
		os.Exit(1)
	}
}

// str2bool mirrors original_source/src/utils/tools.py's str2bool table:
// a small, case-insensitive set of accepted spellings for yes/no.
func str2bool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "true", "t", "y", "1":
		return true, nil
	case "no", "false", "f", "n", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a valid boolean (expected yes/no, true/false, t/f, y/n or 1/0)", v)
	}
}

func run(specPath, artifactDir string, drawSubtrees bool) {
	result := driver.Run(driver.Config{
		SpecPath:     specPath,
		ArtifactDir:  artifactDir,
		DrawSubtrees: drawSubtrees,
	})

	if result.IOError != nil {
		gologger.Error().Msgf("could not read %s: %v", specPath, result.IOError)
		os.Exit(1)
	}

	for _, stage := range result.Stages {
		reportStage(stage)
	}

	if !result.Ok {
		gologger.Error().Msg("compilation failed")
		os.Exit(1)
	}

	gologger.Info().Msgf("rule %q compiled: %d states, %d accepting",
		result.RuleName, len(result.Final.DFA.States), len(result.Final.DFA.Accepting))

	if len(result.LetOrder) > 0 {
		gologger.Info().Msgf("identifiers defined: %s", strings.Join(result.LetOrder, ", "))
	}
	if len(result.ArtifactPaths) > 0 {
		gologger.Info().Msgf("wrote %d diagnostic artifacts to %s", len(result.ArtifactPaths), artifactDir)
	}

	gologger.Info().Msg("done")
}

func reportStage(stage driver.Stage) {
	for _, entry := range stage.Journal.Entries() {
		if entry.Severity == errjournal.Warning {
			gologger.Warning().Msgf("%s: %s", stage.Name, entry)
			continue
		}
		gologger.Error().Msgf("%s: %s", stage.Name, entry)
	}
}
