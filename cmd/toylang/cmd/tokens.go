package cmd

import (
	"fmt"
	"os"

	"github.com/graeme-hill/toylang-go/lib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, err := lib.Tokenize(string(source))
	if err != nil {
		return err
	}

	switch format {
	case "text":
		for _, tok := range tokens {
			fmt.Printf("<%s>\n", tok)
		}
	case "yaml":
		out, err := yaml.Marshal(tokenNodes(tokens))
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		return unknownFormat()
	}

	return nil
}

type tokenNode struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value,omitempty"`
}

func tokenNodes(tokens []lib.Token) []tokenNode {
	nodes := []tokenNode{}
	for _, tok := range tokens {
		nodes = append(nodes, tokenNode{
			Type:  tok.Type.String(),
			Value: string(tok.Value),
		})
	}
	return nodes
}
