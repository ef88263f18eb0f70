package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/griezmannFromJavic/scheme-interpreter/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scheme code",
	Long:  `Run scheme code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := newEnv()
		for i := range exprs {
			complete, err := parser.Parse(env, runPrint, exprs[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if !complete {
				fmt.Fprintln(os.Stderr, "syntax error")
				os.Exit(1)
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
