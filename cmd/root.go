package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Embedded default configuration (from .ccwrapped.yaml)
const defaultConfigYAML = `
statement:
  HDFC:
    patterns:
      prefix: \d{2}/\d{2}/\d{4}\s*\|\s*\d{2}:\d{2}
      transaction: (\d{2}/\d{2}/\d{4})\s*\|\s*(\d{2}:\d{2})\s+(.+?)\s+([\d,]+\.\d{2})\s*[A-Za-z]?$
  AXIS:
    headers:
      banner: PAYMENT SUMMARY
      date: DATE
      description: TRANSACTION
      category: MERCHANT CATEGORY
      amount: AMOUNT
  STANDARD:
    headers:
      date: ['date', 'transaction date', 'txn date', 'posting date']
      description: ['description', 'details', 'particulars', 'narration', 'transaction details']
      amount: ['amount', 'amount (rs.)', 'debit', 'amt', 'transaction amount']
classifier:
  markers:
    bill_payment:
      - BBPS
      - MB/IB PAYMENT
      - NETBANKING TRANSFER
      - PAYMENT RECEIVED
      - INFINITY PAYMENT
      - DUAL PYT
      - NEFT
      - IMPS
      - UPI PAYMENT RECEIVED
    cashback:
      - CASHBACK
      - CB REVERSAL
    hidden_charge:
      - JOINING FEE
      - ANNUAL FEE
      - MEMBERSHIP FEE
      - GST
      - IGST
      - SGST
      - CGST
      - FUEL SURCHARGE
      - LATE PAYMENT
      - FINANCE CHARGE
      - INTEREST CHARGES
      - PROCESSING FEE
categorizer:
  model_path: .ccwrapped-model.gob`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "cc-wrapped [filename]",
		Short: "Credit card statement extraction and spend analysis",
		Long:  `cc-wrapped extracts transactions out of credit card statement PDFs, classifies them, and summarizes your spend`,
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				viper.Set("target", args[0])
				runExtract(extractCmd, []string{})
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	// Add config flag to root command
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.ccwrapped.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Add config paths in order of priority
		viper.AddConfigPath(".")  // First check current directory
		viper.AddConfigPath(home) // Then check home directory
		viper.SetConfigName(".ccwrapped")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use embedded default configuration
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
