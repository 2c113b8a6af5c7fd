// dietctl bundles the offline maintenance tools: the one-shot TACO
// spreadsheet import, the household-measure seeder and the SQLite to
// Postgres copy.
package main

import (
	"errors"
	"log"
	"os"

	"dietcalc/config"
	"dietcalc/importer"
	"dietcalc/models"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	root := &cobra.Command{
		Use:           "dietctl",
		Short:         "Offline maintenance tools for the DietCalc database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(importTacoCmd(), seedMeasuresCmd(), copyDBCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func importTacoCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "import-taco <xlsx>",
		Short: "Load the TACO composition table from its Excel export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			if reset {
				err := config.DB.Migrator().DropTable(
					&models.MealItem{},
					&models.HouseholdMeasure{},
					&models.Food{},
					&models.Category{},
				)
				if err != nil {
					return err
				}
				err = config.DB.AutoMigrate(
					&models.Category{},
					&models.Food{},
					&models.HouseholdMeasure{},
					&models.MealItem{},
				)
				if err != nil {
					return err
				}
			}
			count, err := importer.ImportTACO(config.DB, args[0])
			if err != nil {
				return err
			}
			log.Printf("imported %d foods", count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "drop and recreate the food tables first")
	return cmd
}

func seedMeasuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-measures",
		Short: "Attach common household measures to foods by name keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			count, err := importer.SeedMeasures(config.DB)
			if err != nil {
				return err
			}
			log.Printf("added %d household measures", count)
			return nil
		},
	}
}

func copyDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-db <sqlite-file>",
		Short: "Copy categories, foods and measures from a SQLite file to the Postgres in DATABASE_URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			dsn := os.Getenv("DATABASE_URL")
			if dsn == "" {
				return errors.New("DATABASE_URL not set")
			}
			src, err := gorm.Open(sqlite.Open(args[0]), &gorm.Config{})
			if err != nil {
				return err
			}
			dst, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err != nil {
				return err
			}
			err = dst.AutoMigrate(&models.Category{}, &models.Food{}, &models.HouseholdMeasure{})
			if err != nil {
				return err
			}
			if err := importer.CopyDatabase(src, dst); err != nil {
				return err
			}
			log.Print("copy completed")
			return nil
		},
	}
}
