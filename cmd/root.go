package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/delivergen/delivergen/internal/cloudwriter"
	"github.com/delivergen/delivergen/internal/generator"
	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "delivergen",
	Short: "Generates synthetic food delivery marketplace datasets",
	Long: `delivergen is a CLI tool that generates a complete, referentially
consistent synthetic dataset for a food delivery marketplace: restaurants,
menus, customers, drivers, orders, order items and deliveries, ready for
loading into analytics pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		gen, err := generator.New(cfg)
		if err != nil {
			return err
		}

		dataset, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		sink, err := output.ForConfig(cfg)
		if err != nil {
			return err
		}
		if err := sink.WriteDataset(dataset); err != nil {
			sink.Close()
			return fmt.Errorf("failed to write dataset: %w", err)
		}
		if err := sink.Close(); err != nil {
			return err
		}

		if cfg.CloudStorage.BucketName != "" && isFileFormat(cfg.OutputFormat) {
			if err := uploadToCloud(cfg); err != nil {
				return err
			}
		}
		return nil
	},
	SilenceUsage: true,
}

func isFileFormat(format string) bool {
	switch format {
	case "csv", "json", "parquet":
		return true
	}
	return false
}

func uploadToCloud(cfg *models.Config) error {
	if cfg.CloudStorage.Provider != "" && cfg.CloudStorage.Provider != "s3" {
		return fmt.Errorf("unsupported cloud storage provider: %q", cfg.CloudStorage.Provider)
	}

	factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
	if err != nil {
		return err
	}
	prefix := filepath.Base(cfg.OutputPath)
	return cloudwriter.UploadDir(factory, cfg.CloudStorage.BucketName, prefix, cfg.OutputPath)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.delivergen.yaml)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for generation")
	rootCmd.Flags().String("period-start", time.Now().AddDate(0, -1, 0).Format(time.RFC3339), "Start of the order period")
	rootCmd.Flags().String("period-end", time.Now().Format(time.RFC3339), "End of the order period")
	rootCmd.Flags().Int("restaurant-count", 50, "Number of restaurants")
	rootCmd.Flags().Int("avg-items-per-restaurant", 10, "Average menu size per restaurant")
	rootCmd.Flags().Int("customer-count", 200, "Number of customers")
	rootCmd.Flags().Int("driver-count", 100, "Number of drivers")
	rootCmd.Flags().Int("order-count", 2000, "Number of order attempts")
	rootCmd.Flags().Bool("consistent-totals", false, "Make subtotals include line-item quantities")
	rootCmd.Flags().String("output-format", "csv", "Output format (csv, json, parquet, postgres, kafka)")
	rootCmd.Flags().String("output-path", "data", "Output directory for file-based formats")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("s3-bucket", "", "S3 bucket to mirror file output to")
	rootCmd.Flags().String("s3-region", "us-east-1", "AWS region for the S3 bucket")
	rootCmd.Flags().String("db-host", "localhost", "Postgres host")
	rootCmd.Flags().String("db-port", "5432", "Postgres port")
	rootCmd.Flags().String("db-user", "postgres", "Postgres user")
	rootCmd.Flags().String("db-password", "", "Postgres password")
	rootCmd.Flags().String("db-name", "delivergen", "Postgres database name")
	rootCmd.Flags().String("db-sslmode", "disable", "Postgres sslmode")

	// Flag names use dashes, config keys use underscores.
	bindings := map[string]string{
		"seed":                      "seed",
		"period_start":              "period-start",
		"period_end":                "period-end",
		"restaurant_count":          "restaurant-count",
		"avg_items_per_restaurant":  "avg-items-per-restaurant",
		"customer_count":            "customer-count",
		"driver_count":              "driver-count",
		"order_count":               "order-count",
		"consistent_totals":         "consistent-totals",
		"output_format":             "output-format",
		"output_path":               "output-path",
		"kafka_broker_list":         "kafka-broker-list",
		"cloud_storage.bucket_name": "s3-bucket",
		"cloud_storage.region":      "s3-region",
		"database.host":             "db-host",
		"database.port":             "db-port",
		"database.user":             "db-user",
		"database.password":         "db-password",
		"database.dbname":           "db-name",
		"database.sslmode":          "db-sslmode",
	}
	for key, flag := range bindings {
		viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".delivergen")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
