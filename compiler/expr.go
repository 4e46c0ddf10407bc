package compiler

// Expr is a node of a compiled message body.
type Expr interface {
	expr()
}

// Helper names a runtime helper a compiled message calls.
type Helper string

const (
	HelperInterpolate   Helper = "Interpolate"
	HelperNumber        Helper = "Number"
	HelperDate          Helper = "Date"
	HelperTime          Helper = "Time"
	HelperSelect        Helper = "Select"
	HelperPlural        Helper = "Plural"
	HelperOffsetPlural  Helper = "OffsetPlural"
	HelperOrdinal       Helper = "Ordinal"
	HelperOffsetOrdinal Helper = "OffsetOrdinal"
)

type (
	// Text is a string constant.
	Text string
	// Param is a message parameter value.
	Param string
	// Arith is Param - Operand (Op '-') or Param / Operand (Op '/').
	Arith struct {
		Param   string
		Op      byte
		Operand float64
	}
	// Num is a numeric constant argument.
	Num float64
	// Template concatenates its parts. Value parts (Param, Arith) are
	// rendered with their display form.
	Template []Expr
	// Call invokes a runtime helper.
	Call struct {
		Helper Helper
		Args   []Expr
	}
	// Cases are the dispatch options of a select or plural.
	Cases []Case
	// Bundle is an inline format options object.
	Bundle []BundleEntry
)

// Case is one dispatch option.
type Case struct {
	Key   Key
	Value Expr
}

// BundleEntry is one format option. Value is a float64 or a string.
type BundleEntry struct {
	Name  string
	Value any
}

func (Text) expr()     {}
func (Param) expr()    {}
func (Arith) expr()    {}
func (Num) expr()      {}
func (Template) expr() {}
func (Call) expr()     {}
func (Cases) expr()    {}
func (Bundle) expr()   {}
