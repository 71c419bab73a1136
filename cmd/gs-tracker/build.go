package main

import (
	"github.com/spf13/cobra"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/site"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from the paper store",
	Long: `Build regenerates the dist directory from the source templates and the
persisted collection. The collection is embedded in index.html as inline
data, so the generated site is fully static.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("data", "data/papers.json", "path to the paper store")
	buildCmd.Flags().String("src", "src", "source directory with templates and assets")
	buildCmd.Flags().String("dist", "dist", "output directory")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := types.SiteConfig{
		DataPath: stringSetting(cmd, "data"),
		SrcDir:   stringSetting(cmd, "src"),
		DistDir:  stringSetting(cmd, "dist"),
	}
	return site.Build(cfg, newLogger(cmd))
}
