// Package main contains the cli implementation of the tool. It uses cobra
// package for cli tool implementation.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"sqlgen/internal/config"
	"sqlgen/internal/core"
	"sqlgen/internal/dialect"
	"sqlgen/internal/generator"
	"sqlgen/internal/output"
	"sqlgen/internal/probe"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sqlgen",
		Short: "Dialect-aware DDL generator for abstract table definitions",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(dialectsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		file        string
		dialectName string
		allDialects bool
		asJSON      bool
		dsn         string
		driver      string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate CREATE TABLE SQL from a TOML table definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			stmt, err := config.LoadFile(file)
			if err != nil {
				return err
			}

			targets := []string{dialectName}
			if allDialects {
				targets = dialect.Names()
			}

			dialects := make([]dialect.Dialect, 0, len(targets))
			for _, name := range targets {
				d, err := dialect.Get(name)
				if err != nil {
					return err
				}
				dialects = append(dialects, d)
			}

			// Validate against every target up front so a single run reports
			// all problems across all requested dialects as one batch.
			validator := generator.NewCreateTableGenerator(log, nil)
			combined := &core.ValidationErrors{}
			for _, d := range dialects {
				combined.Merge(validator.Validate(stmt, d))
			}
			if combined.HasErrors() {
				return fmt.Errorf("invalid table definition: %s", combined.Error())
			}

			for _, d := range dialects {
				rendered, err := generateFor(cmd, log, stmt, d, dsn, driver, asJSON)
				if err != nil {
					return err
				}
				if allDialects {
					fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", d.Name())
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "table.toml", "table definition file")
	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "mysql", "target dialect")
	cmd.Flags().BoolVar(&allDialects, "all-dialects", false, "generate for every registered dialect")
	cmd.Flags().BoolVar(&asJSON, "json", false, "render output as JSON")
	cmd.Flags().StringVar(&dsn, "dsn", "", "optional connection string for version probing")
	cmd.Flags().StringVar(&driver, "driver", "", "sql driver for --dsn (mysql or postgres)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func generateFor(cmd *cobra.Command, log *zap.Logger, stmt *core.CreateTableStatement, d dialect.Dialect, dsn, driver string, asJSON bool) (string, error) {
	var prober probe.Prober
	if dsn != "" {
		db, err := openProbeDB(d, dsn, driver)
		if err != nil {
			// Probing is best-effort; generation continues on the default version.
			log.Warn("cannot open probe connection", zap.String("dialect", d.Name()), zap.Error(err))
		} else {
			defer db.Close()
			prober = probe.NewDBProber(db, d.VersionQuery())
		}
	}

	gen := generator.NewCreateTableGenerator(log, prober)
	reg := generator.NewRegistry()
	reg.Register(core.StatementCreateTable, gen)

	selected, err := reg.For(core.StatementCreateTable, d)
	if err != nil {
		return "", err
	}

	fragments := selected.Generate(cmd.Context(), stmt, d)
	if asJSON {
		return output.FormatJSON(d.Name(), fragments)
	}
	return output.FormatSQL(fragments), nil
}

func openProbeDB(d dialect.Dialect, dsn, driver string) (*sql.DB, error) {
	if driver == "" {
		switch d.Name() {
		case "mysql", "mariadb":
			driver = "mysql"
		case "postgresql":
			driver = "postgres"
		default:
			return nil, fmt.Errorf("no bundled driver for dialect %s; pass --driver", d.Name())
		}
	}
	return sql.Open(driver, dsn)
}

func dialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(dialect.Names(), "\n"))
			return nil
		},
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
