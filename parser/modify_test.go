package parser

import (
	"reflect"
	"testing"
)

func TestModifyRewritesIntegerLiterals(t *testing.T) {
	one := func() Expr { return &IntegerLiteral{Value: 1} }
	two := func() Expr { return &IntegerLiteral{Value: 2} }

	turnOneIntoTwo := func(node Node) Node {
		integer, ok := node.(*IntegerLiteral)
		if !ok {
			return node
		}
		if integer.Value != 1 {
			return node
		}
		integer.Value = 2
		return integer
	}

	tests := []struct {
		input    Node
		expected Node
	}{
		{one(), two()},
		{
			&Program{Statements: []Stmt{&ExpressionStatement{Expression: one()}}},
			&Program{Statements: []Stmt{&ExpressionStatement{Expression: two()}}},
		},
		{
			&InfixExpression{Left: one(), Operator: "+", Right: two()},
			&InfixExpression{Left: two(), Operator: "+", Right: two()},
		},
		{
			&PrefixExpression{Operator: "-", Right: one()},
			&PrefixExpression{Operator: "-", Right: two()},
		},
		{
			&IndexExpression{Left: one(), Index: one()},
			&IndexExpression{Left: two(), Index: two()},
		},
		{
			&IfExpression{
				Condition: one(),
				Consequence: &BlockStatement{Statements: []Stmt{&ExpressionStatement{Expression: one()}}},
				Alternative: &BlockStatement{Statements: []Stmt{&ExpressionStatement{Expression: one()}}},
			},
			&IfExpression{
				Condition: two(),
				Consequence: &BlockStatement{Statements: []Stmt{&ExpressionStatement{Expression: two()}}},
				Alternative: &BlockStatement{Statements: []Stmt{&ExpressionStatement{Expression: two()}}},
			},
		},
		{
			&ReturnStatement{Value: one()},
			&ReturnStatement{Value: two()},
		},
		{
			&LetStatement{Value: one()},
			&LetStatement{Value: two()},
		},
		{
			&FunctionLiteral{
				Parameters: []*Identifier{},
				Body:       &BlockStatement{Statements: []Stmt{&ExpressionStatement{Expression: one()}}},
			},
			&FunctionLiteral{
				Parameters: []*Identifier{},
				Body:       &BlockStatement{Statements: []Stmt{&ExpressionStatement{Expression: two()}}},
			},
		},
		{
			&ArrayLiteral{Elements: []Expr{one(), one()}},
			&ArrayLiteral{Elements: []Expr{two(), two()}},
		},
	}

	for _, tt := range tests {
		modified := Modify(tt.input, turnOneIntoTwo)
		if !reflect.DeepEqual(modified, tt.expected) {
			t.Errorf("not equal. got=%#v, want=%#v", modified, tt.expected)
		}
	}
}

func TestModifyHashLiteral(t *testing.T) {
	one := func() Expr { return &IntegerLiteral{Value: 1} }

	turnOneIntoTwo := func(node Node) Node {
		integer, ok := node.(*IntegerLiteral)
		if !ok || integer.Value != 1 {
			return node
		}
		integer.Value = 2
		return integer
	}

	hash := &HashLiteral{Pairs: []HashPair{{Key: one(), Value: one()}}}
	Modify(hash, turnOneIntoTwo)

	for _, pair := range hash.Pairs {
		key, _ := pair.Key.(*IntegerLiteral)
		val, _ := pair.Value.(*IntegerLiteral)
		if key.Value != 2 {
			t.Errorf("key not modified, got=%d", key.Value)
		}
		if val.Value != 2 {
			t.Errorf("value not modified, got=%d", val.Value)
		}
	}
}
