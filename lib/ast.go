package lib

type operatorType int

const (
	OperatorPlus operatorType = iota
	OperatorMinus
)

func (op operatorType) String() string {
	switch op {
	case OperatorPlus:
		return "+"
	case OperatorMinus:
		return "-"
	default:
		return "?"
	}
}

type Expression interface {
	isExpression()
}

func (v ValueExpression) isExpression()      {}
func (i IdentifierExpression) isExpression() {}
func (i InfixExpression) isExpression()      {}
func (a AssignmentExpression) isExpression() {}

type ValueType interface {
	isValueType()
}

func (i IntegerValue) isValueType() {}
func (f FloatValue) isValueType()   {}
func (s StringValue) isValueType()  {}

type IntegerValue struct {
	Value int32
}

type FloatValue struct {
	Value float32
}

type StringValue struct {
	Value string
}

type ValueExpression struct {
	Value ValueType
}

type IdentifierExpression struct {
	Name string
}

type InfixExpression struct {
	Left  Expression
	Op    operatorType
	Right Expression
}

type AssignmentExpression struct {
	Identifier string
	Value      Expression
}
