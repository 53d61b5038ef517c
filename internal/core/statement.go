// Package core contains the dialect-neutral description of a schema-change
// intent. A statement is built once by the caller and is read-only while a
// generator turns it into SQL text.
package core

import "strings"

// StatementKind identifies a kind of schema-change statement for generator lookup.
type StatementKind string

const (
	StatementCreateTable StatementKind = "createTable"
)

// CreateTableStatement describes a table to be created, including its columns,
// constraints and table-level options. Column order is significant; generated
// output lists columns in the declared order.
type CreateTableStatement struct {
	CatalogName     string
	SchemaName      string
	TableName       string
	TableType       string
	IfNotExists     bool
	RowDependencies bool
	Tablespace      string
	Remarks         string

	Columns                     []string
	ColumnTypes                 map[string]string
	DefaultValues               map[string]DefaultValue
	DefaultValueConstraintNames map[string]string
	NotNullColumns              map[string]*NotNullConstraint
	ColumnRemarks               map[string]string

	AutoIncrementConstraints []*AutoIncrementConstraint
	PrimaryKey               *PrimaryKeyConstraint
	ForeignKeys              []*ForeignKeyConstraint
	UniqueConstraints        []*UniqueConstraint
}

// NewCreateTableStatement initializes an empty statement for the given table.
func NewCreateTableStatement(catalog, schema, table string) *CreateTableStatement {
	return &CreateTableStatement{
		CatalogName:                 catalog,
		SchemaName:                  schema,
		TableName:                   table,
		ColumnTypes:                 make(map[string]string),
		DefaultValues:               make(map[string]DefaultValue),
		DefaultValueConstraintNames: make(map[string]string),
		NotNullColumns:              make(map[string]*NotNullConstraint),
		ColumnRemarks:               make(map[string]string),
	}
}

// AddColumn appends a column with the given declared type. An empty type marks
// a computed column, which is emitted as the bare escaped name.
func (s *CreateTableStatement) AddColumn(name, columnType string) *CreateTableStatement {
	s.Columns = append(s.Columns, name)
	if strings.TrimSpace(columnType) != "" {
		s.ColumnTypes[name] = columnType
	}
	return s
}

// SetDefaultValue attaches a default value to a declared column.
func (s *CreateTableStatement) SetDefaultValue(column string, value DefaultValue) *CreateTableStatement {
	s.DefaultValues[column] = value
	return s
}

// SetNotNull attaches a not-null constraint to a declared column.
func (s *CreateTableStatement) SetNotNull(column string, c *NotNullConstraint) *CreateTableStatement {
	c.ColumnName = column
	s.NotNullColumns[column] = c
	return s
}

// SetColumnRemark attaches a free-text remark to a declared column.
func (s *CreateTableStatement) SetColumnRemark(column, remark string) *CreateTableStatement {
	s.ColumnRemarks[column] = remark
	return s
}

// AddAutoIncrement appends an auto-increment constraint.
func (s *CreateTableStatement) AddAutoIncrement(c *AutoIncrementConstraint) *CreateTableStatement {
	s.AutoIncrementConstraints = append(s.AutoIncrementConstraints, c)
	return s
}

// AddForeignKey appends a foreign key constraint.
func (s *CreateTableStatement) AddForeignKey(c *ForeignKeyConstraint) *CreateTableStatement {
	s.ForeignKeys = append(s.ForeignKeys, c)
	return s
}

// AddUnique appends a unique constraint.
func (s *CreateTableStatement) AddUnique(c *UniqueConstraint) *CreateTableStatement {
	s.UniqueConstraints = append(s.UniqueConstraints, c)
	return s
}

// AutoIncrement returns the auto-increment constraint declared for the column,
// or nil if the column has none.
func (s *CreateTableStatement) AutoIncrement(column string) *AutoIncrementConstraint {
	for _, c := range s.AutoIncrementConstraints {
		if c != nil && c.ColumnName == column {
			return c
		}
	}
	return nil
}

// NotNullConstraint marks a column as NOT NULL, optionally under a named
// constraint. Validate=false requests the dialect's deferred-validation
// phrasing where one exists.
type NotNullConstraint struct {
	Name       string
	ColumnName string
	Validate   bool
}

// NewNotNullConstraint returns a not-null constraint that validates immediately.
func NewNotNullConstraint(name string) *NotNullConstraint {
	return &NotNullConstraint{Name: name, Validate: true}
}

// AutoIncrementConstraint requests identity behavior for a single column.
type AutoIncrementConstraint struct {
	ColumnName     string
	StartWith      *int64
	IncrementBy    *int64
	GenerationType string
	DefaultOnNull  bool
}

// PrimaryKeyConstraint declares the table's primary key over an ordered set
// of columns.
type PrimaryKeyConstraint struct {
	Name              string
	Columns           []string
	Tablespace        string
	InitiallyDeferred bool
	Deferrable        bool
	Validate          bool
}

// NewPrimaryKeyConstraint returns a primary key over the given columns that
// validates immediately.
func NewPrimaryKeyConstraint(name string, columns ...string) *PrimaryKeyConstraint {
	return &PrimaryKeyConstraint{Name: name, Columns: columns, Validate: true}
}

// HasColumn reports whether the column participates in the primary key.
func (c *PrimaryKeyConstraint) HasColumn(column string) bool {
	for _, col := range c.Columns {
		if col == column {
			return true
		}
	}
	return false
}

// ForeignKeyConstraint declares a single-column foreign key. The target is
// either a raw References clause or an explicit catalog/schema/table/columns
// tuple; References wins when both are set.
type ForeignKeyConstraint struct {
	Name   string
	Column string

	References        string
	ReferencedCatalog string
	ReferencedSchema  string
	ReferencedTable   string
	ReferencedColumns []string

	DeleteCascade     bool
	InitiallyDeferred bool
	Deferrable        bool
	Validate          bool
}

// NewForeignKeyConstraint returns a foreign key that validates immediately.
func NewForeignKeyConstraint(name, column string) *ForeignKeyConstraint {
	return &ForeignKeyConstraint{Name: name, Column: column, Validate: true}
}

// UniqueConstraint declares a unique constraint over an ordered set of columns.
// Constraints sharing an explicit name are merged during generation.
type UniqueConstraint struct {
	Name     string
	Columns  []string
	Validate bool
}

// NewUniqueConstraint returns a unique constraint that validates immediately.
func NewUniqueConstraint(name string, columns ...string) *UniqueConstraint {
	return &UniqueConstraint{Name: name, Columns: columns, Validate: true}
}
