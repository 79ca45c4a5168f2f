package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sequelgo/sequelgo/dialect"
	sqldrv "github.com/sequelgo/sequelgo/dialect/sql"
	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen"
	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen/postgres"
	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen/sqlite"

	// Database drivers for --dsn execution.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// schemaFile is the YAML table-definition format accepted by ddl.
type schemaFile struct {
	Tables []tableDef `yaml:"tables"`
}

type tableDef struct {
	Name    string      `yaml:"name"`
	Schema  string      `yaml:"schema"`
	Columns []columnDef `yaml:"columns"`
}

type columnDef struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Nullable      bool   `yaml:"nullable"`
	Default       any    `yaml:"default"`
	Unique        bool   `yaml:"unique"`
	PrimaryKey    bool   `yaml:"primary_key"`
	AutoIncrement bool   `yaml:"auto_increment"`
}

var ddlCmd = &cobra.Command{
	Use:   "ddl <schema.yaml>",
	Short: "Render CREATE TABLE statements from a schema file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(dialectName)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var file schemaFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		var plan sqlgen.Plan
		for _, t := range file.Tables {
			cols := make([]sqlgen.Column, len(t.Columns))
			for i, c := range t.Columns {
				cols[i] = sqlgen.Column{
					Name:          c.Name,
					Type:          c.Type,
					Nullable:      c.Nullable,
					Default:       c.Default,
					Unique:        c.Unique,
					PrimaryKey:    c.PrimaryKey,
					AutoIncrement: c.AutoIncrement,
				}
			}
			st, err := gen.CreateTable(sqlgen.TableName{Schema: t.Schema, Name: t.Name}, cols)
			if err != nil {
				return fmt.Errorf("table %s: %w", t.Name, err)
			}
			plan.Statements = append(plan.Statements, st)
		}
		if dsn == "" {
			for _, st := range plan.Statements {
				fmt.Println(st.Query)
			}
			return nil
		}
		return execPlan(cmd.Context(), plan)
	},
}

func newGenerator(name string) (*sqlgen.Generator, error) {
	switch name {
	case dialect.SQLite:
		return sqlite.New(), nil
	case dialect.Postgres:
		return postgres.New(), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
}

func execPlan(ctx context.Context, plan sqlgen.Plan) error {
	if ctx == nil {
		ctx = context.Background()
	}
	drv, err := sqldrv.Open(dialectName, dsn)
	if err != nil {
		return err
	}
	defer drv.Close()
	var target dialect.Driver = drv
	if verbose {
		target = sqldrv.NewDebugDriver(drv)
	}
	return sqldrv.ExecPlan(ctx, target, plan)
}
