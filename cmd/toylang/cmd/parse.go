package cmd

import (
	"fmt"

	"github.com/graeme-hill/toylang-go/lib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the parsed expressions of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	program, err := lib.ReadProgramFromFile(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "text":
		for _, expr := range program.AST {
			fmt.Println(expressionString(expr))
		}
	case "yaml":
		nodes := []interface{}{}
		for _, expr := range program.AST {
			nodes = append(nodes, expressionNode(expr))
		}
		out, err := yaml.Marshal(nodes)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		return unknownFormat()
	}

	return nil
}

func expressionString(expr lib.Expression) string {
	switch e := expr.(type) {
	case lib.ValueExpression:
		return valueString(e.Value)
	case lib.IdentifierExpression:
		return e.Name
	case lib.InfixExpression:
		return fmt.Sprintf("(%s %s %s)", expressionString(e.Left), e.Op, expressionString(e.Right))
	case lib.AssignmentExpression:
		return fmt.Sprintf("let %s = %s", e.Identifier, expressionString(e.Value))
	default:
		return "?"
	}
}

func valueString(value lib.ValueType) string {
	switch v := value.(type) {
	case lib.IntegerValue:
		return fmt.Sprintf("%d", v.Value)
	case lib.FloatValue:
		return fmt.Sprintf("%g", v.Value)
	case lib.StringValue:
		return fmt.Sprintf("%q", v.Value)
	default:
		return "?"
	}
}

func expressionNode(expr lib.Expression) interface{} {
	switch e := expr.(type) {
	case lib.ValueExpression:
		return map[string]interface{}{"value": valueNode(e.Value)}
	case lib.IdentifierExpression:
		return map[string]interface{}{"identifier": e.Name}
	case lib.InfixExpression:
		return map[string]interface{}{"infix": map[string]interface{}{
			"left":     expressionNode(e.Left),
			"operator": e.Op.String(),
			"right":    expressionNode(e.Right),
		}}
	case lib.AssignmentExpression:
		return map[string]interface{}{"assignment": map[string]interface{}{
			"identifier": e.Identifier,
			"value":      expressionNode(e.Value),
		}}
	default:
		return nil
	}
}

func valueNode(value lib.ValueType) interface{} {
	switch v := value.(type) {
	case lib.IntegerValue:
		return v.Value
	case lib.FloatValue:
		return v.Value
	case lib.StringValue:
		return v.Value
	default:
		return nil
	}
}
