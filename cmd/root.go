/*
Copyright © 2025

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stpsched/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stpsched",
	Short: "Read STP work-schedule spreadsheets and render monthly reports.",
	Long: `stpsched reads the hand-maintained schedule spreadsheets uploaded for the
STP divisions, finds an employee's month inside them and renders compact or
detailed schedule reports plus the night/holiday hours split used by the
salary calculation.

The spreadsheets stay the single source of truth: every lookup re-resolves
the newest uploaded file for the division and roster type.`,
	Example: `
  # Compact monthly report
  stpsched schedule --name "Иванов Иван Иванович" --month июнь --division НТП1 --compact

  # Day-by-day report for the duty roster
  stpsched schedule --name "Иванов Иван Иванович" --month июнь --division НТП1 --type duties

  # Hours split for the salary calculation
  stpsched hours --name "Иванов Иван Иванович" --month июнь --division НТП1 --year 2026

  # Which file would be used
  stpsched info --division НТП1 --type regular
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.stpsched.yaml, then ./.stpsched.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stpsched")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover a missing file; a config file is only needed to
	// point at non-default locations.
	_ = viper.ReadInConfig()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
