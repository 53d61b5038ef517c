// Package config reads a table definition from a TOML file and converts it
// into the canonical core.CreateTableStatement that the generator operates on.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"sqlgen/internal/core"
)

// tableFile is the top-level TOML document.
type tableFile struct {
	Table       tomlTable        `toml:"table"`
	Columns     []tomlColumn     `toml:"columns"`
	ForeignKeys []tomlForeignKey `toml:"foreign_keys"`
	Unique      []tomlUnique     `toml:"unique"`
}

// tomlTable maps [table].
type tomlTable struct {
	Catalog         string `toml:"catalog"`
	Schema          string `toml:"schema"`
	Name            string `toml:"name"`
	Type            string `toml:"type"`
	IfNotExists     bool   `toml:"if_not_exists"`
	RowDependencies bool   `toml:"row_dependencies"`
	Tablespace      string `toml:"tablespace"`
	Remarks         string `toml:"remarks"`

	PrimaryKeyName       string `toml:"primary_key_name"`
	PrimaryKeyTablespace string `toml:"primary_key_tablespace"`
}

// tomlColumn maps one [[columns]] entry.
type tomlColumn struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Remark string `toml:"remark"`

	Default         string `toml:"default"`
	DefaultFunction string `toml:"default_function"`
	DefaultSequence string `toml:"default_sequence"`
	DefaultName     string `toml:"default_constraint_name"`

	NotNull     bool   `toml:"not_null"`
	NotNullName string `toml:"not_null_name"`

	PrimaryKey bool `toml:"primary_key"`

	AutoIncrement  bool   `toml:"auto_increment"`
	StartWith      *int64 `toml:"start_with"`
	IncrementBy    *int64 `toml:"increment_by"`
	GenerationType string `toml:"generation_type"`
	DefaultOnNull  bool   `toml:"default_on_null"`
}

// tomlForeignKey maps one [[foreign_keys]] entry.
type tomlForeignKey struct {
	Name              string   `toml:"name"`
	Column            string   `toml:"column"`
	References        string   `toml:"references"`
	ReferencedCatalog string   `toml:"referenced_catalog"`
	ReferencedSchema  string   `toml:"referenced_schema"`
	ReferencedTable   string   `toml:"referenced_table"`
	ReferencedColumns []string `toml:"referenced_columns"`
	OnDeleteCascade   bool     `toml:"on_delete_cascade"`
	InitiallyDeferred bool     `toml:"initially_deferred"`
	Deferrable        bool     `toml:"deferrable"`
}

// tomlUnique maps one [[unique]] entry.
type tomlUnique struct {
	Name    string   `toml:"name"`
	Columns []string `toml:"columns"`
}

// LoadFile opens the file at the given path and parses it as a table definition.
func LoadFile(path string) (*core.CreateTableStatement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open file %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads TOML content from reader and returns the corresponding statement.
func Load(r io.Reader) (*core.CreateTableStatement, error) {
	var tf tableFile
	if _, err := toml.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("config: decode error: %w", err)
	}
	return convert(&tf)
}

func convert(tf *tableFile) (*core.CreateTableStatement, error) {
	if strings.TrimSpace(tf.Table.Name) == "" {
		return nil, fmt.Errorf("config: table name is required")
	}

	stmt := core.NewCreateTableStatement(tf.Table.Catalog, tf.Table.Schema, tf.Table.Name)
	stmt.TableType = tf.Table.Type
	stmt.IfNotExists = tf.Table.IfNotExists
	stmt.RowDependencies = tf.Table.RowDependencies
	stmt.Tablespace = tf.Table.Tablespace
	stmt.Remarks = tf.Table.Remarks

	var pkColumns []string
	for i := range tf.Columns {
		col := &tf.Columns[i]
		if strings.TrimSpace(col.Name) == "" {
			return nil, fmt.Errorf("config: column at index %d has no name", i)
		}
		stmt.AddColumn(col.Name, col.Type)
		convertColumn(stmt, col)
		if col.PrimaryKey {
			pkColumns = append(pkColumns, col.Name)
		}
	}

	if len(pkColumns) > 0 {
		pk := core.NewPrimaryKeyConstraint(tf.Table.PrimaryKeyName, pkColumns...)
		pk.Tablespace = tf.Table.PrimaryKeyTablespace
		stmt.PrimaryKey = pk
	}

	for i := range tf.ForeignKeys {
		fk := &tf.ForeignKeys[i]
		if strings.TrimSpace(fk.Column) == "" {
			return nil, fmt.Errorf("config: foreign key %q has no column", fk.Name)
		}
		c := core.NewForeignKeyConstraint(fk.Name, fk.Column)
		c.References = fk.References
		c.ReferencedCatalog = fk.ReferencedCatalog
		c.ReferencedSchema = fk.ReferencedSchema
		c.ReferencedTable = fk.ReferencedTable
		c.ReferencedColumns = fk.ReferencedColumns
		c.DeleteCascade = fk.OnDeleteCascade
		c.InitiallyDeferred = fk.InitiallyDeferred
		c.Deferrable = fk.Deferrable
		stmt.AddForeignKey(c)
	}

	for i := range tf.Unique {
		u := &tf.Unique[i]
		stmt.AddUnique(core.NewUniqueConstraint(u.Name, u.Columns...))
	}

	return stmt, nil
}

func convertColumn(stmt *core.CreateTableStatement, col *tomlColumn) {
	switch {
	case col.DefaultFunction != "":
		stmt.SetDefaultValue(col.Name, core.DatabaseFunction(col.DefaultFunction))
	case col.DefaultSequence != "":
		stmt.SetDefaultValue(col.Name, core.SequenceNextValue(col.DefaultSequence))
	case col.Default != "":
		stmt.SetDefaultValue(col.Name, core.LiteralValue(col.Default))
	}
	if col.DefaultName != "" {
		stmt.DefaultValueConstraintNames[col.Name] = col.DefaultName
	}

	if col.NotNull {
		stmt.SetNotNull(col.Name, core.NewNotNullConstraint(col.NotNullName))
	}
	if col.Remark != "" {
		stmt.SetColumnRemark(col.Name, col.Remark)
	}

	if col.AutoIncrement {
		stmt.AddAutoIncrement(&core.AutoIncrementConstraint{
			ColumnName:     col.Name,
			StartWith:      col.StartWith,
			IncrementBy:    col.IncrementBy,
			GenerationType: col.GenerationType,
			DefaultOnNull:  col.DefaultOnNull,
		})
	}
}
