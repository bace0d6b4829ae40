package wire

import (
	"errors"
	"fmt"

	"github.com/daytime-project/daytime-go/pkg/calc"
)

// Validation errors.
var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrInvalidRecord  = errors.New("invalid record")
)

// Operand is the wire form of a calc.Value.
type Operand struct {
	// Kind is the calc.Kind of the value (1=time, 2=duration).
	Kind uint8 `cbor:"1,keyasint"`

	// Seconds is seconds since midnight or total seconds.
	Seconds int64 `cbor:"2,keyasint"`
}

// FromValue converts a calc.Value to its wire form.
func FromValue(v calc.Value) Operand {
	return Operand{Kind: uint8(v.Kind()), Seconds: v.Seconds()}
}

// Value converts the operand back, enforcing the daytime invariants.
func (o Operand) Value() (calc.Value, error) {
	v, err := calc.ValueFromSeconds(calc.Kind(o.Kind), o.Seconds)
	if err != nil {
		return calc.Value{}, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
	}
	return v, nil
}

// Validate checks that the operand decodes to a valid value.
func (o Operand) Validate() error {
	_, err := o.Value()
	return err
}

// String renders the operand as "<kind> <value>", or the raw fields if
// the operand is invalid.
func (o Operand) String() string {
	v, err := o.Value()
	if err != nil {
		return fmt.Sprintf("<kind %d, %d s>", o.Kind, o.Seconds)
	}
	return v.Kind().String() + " " + v.String()
}

// Record captures one evaluated expression.
type Record struct {
	// RunID groups records produced by one batch run or REPL session.
	RunID string `cbor:"1,keyasint"`

	// Name identifies the case within its run.
	Name string `cbor:"2,keyasint,omitempty"`

	// Expr is the source text of the expression.
	Expr string `cbor:"3,keyasint"`

	// Left, Op and Right are set when the expression parsed.
	Left  *Operand `cbor:"4,keyasint,omitempty"`
	Op    string   `cbor:"5,keyasint,omitempty"`
	Right *Operand `cbor:"6,keyasint,omitempty"`

	// Exactly one of Result, Bool, Order or Error describes the outcome.
	Result *Operand `cbor:"7,keyasint,omitempty"`
	Bool   *bool    `cbor:"8,keyasint,omitempty"`
	Order  *int     `cbor:"9,keyasint,omitempty"`
	Error  string   `cbor:"10,keyasint,omitempty"`

	// Expect and Passed are set for checked cases.
	Expect string `cbor:"11,keyasint,omitempty"`
	Passed *bool  `cbor:"12,keyasint,omitempty"`
}

// NewRecord builds a record from an expression and its evaluation outcome.
// expr may be the zero Expr when parsing failed.
func NewRecord(runID, name, source string, expr calc.Expr, res calc.Result, evalErr error) *Record {
	rec := &Record{RunID: runID, Name: name, Expr: source}

	if expr.Left.IsValid() && expr.Right.IsValid() {
		left, right := FromValue(expr.Left), FromValue(expr.Right)
		rec.Left, rec.Right = &left, &right
		rec.Op = expr.Op.String()
	}

	if evalErr != nil {
		rec.Error = evalErr.Error()
		return rec
	}

	switch res.Kind {
	case calc.ResultValue:
		out := FromValue(res.Value)
		rec.Result = &out
	case calc.ResultBool:
		b := res.Bool
		rec.Bool = &b
	case calc.ResultOrder:
		o := res.Order
		rec.Order = &o
	}
	return rec
}

// Outcome renders the record's result or error as text.
func (r *Record) Outcome() string {
	switch {
	case r.Error != "":
		return "error: " + r.Error
	case r.Result != nil:
		v, err := r.Result.Value()
		if err != nil {
			return r.Result.String()
		}
		return v.String()
	case r.Bool != nil:
		return fmt.Sprint(*r.Bool)
	case r.Order != nil:
		return fmt.Sprint(*r.Order)
	default:
		return ""
	}
}

// Validate checks structural consistency of the record.
func (r *Record) Validate() error {
	if r.RunID == "" {
		return fmt.Errorf("%w: missing run ID", ErrInvalidRecord)
	}
	if r.Expr == "" {
		return fmt.Errorf("%w: missing expression", ErrInvalidRecord)
	}

	outcomes := 0
	if r.Result != nil {
		outcomes++
	}
	if r.Bool != nil {
		outcomes++
	}
	if r.Order != nil {
		outcomes++
	}
	if r.Error != "" {
		outcomes++
	}
	if outcomes != 1 {
		return fmt.Errorf("%w: expected exactly one outcome, got %d", ErrInvalidRecord, outcomes)
	}

	for _, op := range []*Operand{r.Left, r.Right, r.Result} {
		if op == nil {
			continue
		}
		if err := op.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	}
	if (r.Left == nil) != (r.Right == nil) {
		return fmt.Errorf("%w: operands must be both present or both absent", ErrInvalidRecord)
	}
	return nil
}
