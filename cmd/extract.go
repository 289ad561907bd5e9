package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mintbomb27/cc-wrapped/categorize"
	"github.com/mintbomb27/cc-wrapped/classify"
	"github.com/mintbomb27/cc-wrapped/extractor"
	"github.com/mintbomb27/cc-wrapped/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	extractIssuer   string
	extractPassword string
	extractReport   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extracts statement(s)",
	Long: `Extracts transactions from a statement PDF or a directory of them.
Each extracted record is classified before being printed as JSON.`,
	Run: runExtract,
}

// extractOutput is the JSON document printed per run.
type extractOutput struct {
	Transactions []classify.Transaction `json:"transactions"`
	Report       *report.Report         `json:"report,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) {
	target := viper.GetString("target")
	log.Println("scanning", target)

	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot access %s: %v\n", target, err)
		os.Exit(1)
	}

	var paths []string
	if info.IsDir() {
		entries, err := os.ReadDir(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: cannot read %s: %v\n", target, err)
			os.Exit(1)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
				paths = append(paths, filepath.Join(target, e.Name()))
			}
		}
	} else {
		paths = []string{target}
	}

	predictor := categorize.Shared()
	output := extractOutput{Transactions: []classify.Transaction{}}
	for _, path := range paths {
		raws := extractor.ProcessFile(path, extractPassword, extractIssuer)
		output.Transactions = append(output.Transactions, classify.All(raws, predictor)...)
	}

	if extractReport {
		rep := report.Build(output.Transactions)
		output.Report = &rep
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "error: encoding output: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("folder", "f", ".", "File or folder to scan for statements")
	extractCmd.Flags().StringVarP(&extractIssuer, "issuer", "i", "", "Issuer hint (hdfc, axis, other)")
	extractCmd.Flags().StringVarP(&extractPassword, "password", "p", "", "Statement PDF password")
	extractCmd.Flags().BoolVarP(&extractReport, "report", "r", false, "Append a spend report to the output")
	viper.BindPFlag("target", extractCmd.Flags().Lookup("folder"))
}
