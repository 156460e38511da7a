package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	description string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a single prior-art analysis from the command line",
	Long: `Run the full analysis pipeline once for the given invention description
and print the generated search artifacts and the final report.`,
	Run: func(cmd *cobra.Command, args []string) {
		if description == "" {
			fmt.Println("Error: invention description is required")
			return
		}

		ctx := context.Background()

		service, err := newAnalysisService()
		if err != nil {
			fmt.Printf("Error initializing pipeline: %v\n", err)
			return
		}

		result, err := service.Run(ctx, description)
		if err != nil {
			fmt.Printf("Error running analysis: %v\n", err)
			return
		}

		fmt.Println("Search artifacts:")
		fmt.Println("-------------------")
		fmt.Printf("Base keywords:  %s\n", strings.Join(result.SearchArtifacts.Base.TechnicalKeywords, ", "))
		fmt.Printf("Base CPC codes: %s\n", strings.Join(result.SearchArtifacts.Base.CPCCodes, ", "))
		fmt.Printf("Base HyDE abstract:\n%s\n\n", result.SearchArtifacts.Base.HydeAbstract)
		fmt.Printf("Novel keywords:  %s\n", strings.Join(result.SearchArtifacts.Novel.TechnicalKeywords, ", "))
		fmt.Printf("Novel CPC codes: %s\n", strings.Join(result.SearchArtifacts.Novel.CPCCodes, ", "))
		fmt.Printf("Novel HyDE abstract:\n%s\n", result.SearchArtifacts.Novel.HydeAbstract)
		fmt.Println("-------------------")
		fmt.Println("Final report:")
		fmt.Println("-------------------")
		fmt.Println(result.FinalReport)
		fmt.Println("-------------------")
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&description, "description", "d", "", "invention description to analyze")
}
