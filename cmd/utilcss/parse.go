package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
)

var parseCmd = &cobra.Command{
	Use:   "parse <class>",
	Short: "Print the parsed structure of a class as JSON",
	Long:  `Parse a single class and print its rule, arguments and modifiers as JSON, for editor tooling.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

// parsedClass is the JSON view of a parsed class.
type parsedClass struct {
	Class     string           `json:"class"`
	Canonical string           `json:"canonical"`
	Rule      string           `json:"rule"`
	Args      []parsedArg      `json:"args"`
	Modifiers []parsedModifier `json:"modifiers"`
	Important bool             `json:"important"`
}

type parsedArg struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

type parsedModifier struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Width int    `json:"width,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	expr, err := utilcss.Parse(args[0])
	if err != nil {
		return err
	}

	out := parsedClass{
		Class:     expr.Raw,
		Canonical: expr.String(),
		Rule:      expr.Rule,
		Args:      []parsedArg{},
		Modifiers: []parsedModifier{},
		Important: expr.Important,
	}
	for _, a := range expr.Args {
		out.Args = append(out.Args, parsedArg{Key: a.Key, Value: a.Value})
	}
	for _, m := range expr.Modifiers {
		out.Modifiers = append(out.Modifiers, parsedModifier{
			Kind:  m.Kind.String(),
			Name:  m.Name,
			Value: m.Value,
			Width: m.Width,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	return nil
}
