package core

// DefaultValue is a column default: a literal rendered verbatim, a database
// function, or the next value of a sequence. Generators render each form
// through the dialect's own rules.
type DefaultValue interface {
	defaultValue()
	String() string
}

// LiteralValue is a default rendered as given, e.g. "0" or "'pending'".
// The caller is responsible for literal quoting.
type LiteralValue string

func (LiteralValue) defaultValue()    {}
func (v LiteralValue) String() string { return string(v) }

// DatabaseFunction is a function-valued default, e.g. "NOW()".
type DatabaseFunction string

func (DatabaseFunction) defaultValue()    {}
func (v DatabaseFunction) String() string { return string(v) }

// SequenceNextValue is a default drawing from a named sequence.
type SequenceNextValue string

func (SequenceNextValue) defaultValue()    {}
func (v SequenceNextValue) String() string { return string(v) }
