package cmd

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rami3l/govox/vm"
	"github.com/rami3l/govox/vmath"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

func App() (app *cobra.Command) {
	app = &cobra.Command{
		Use:   "govox [EXPR]...",
		Short: "govox: A vector math calculator.",
		Long: heredoc.Doc(`
			govox: A vector math calculator.

			Evaluates each EXPR in order and prints its value, or starts an
			interactive prompt when no EXPR is given. Globals defined with
			'let' are shared between expressions:

			    govox 'let v = vec3(3, 0, 4)' 'normalize(v)' 'length(v)'
		`),
	}
	app.Flags().SortFlags = true

	defaultVerbosityStr := "INFO"
	verbosity := app.Flags().StringP("verbosity", "v", defaultVerbosityStr, "logging verbosity")
	fast := app.Flags().Bool("fast", false, "normalize with the fast approximate inverse square root")

	app.Run = func(cmd *cobra.Command, args []string) {
		verbosityLvl, err := logrus.ParseLevel(*verbosity)
		if err != nil {
			verbosityLvl, _ = logrus.ParseLevel(defaultVerbosityStr)
		}
		logrus.SetLevel(verbosityLvl)
		logrus.SetFormatter(&easy.Formatter{LogFormat: "%lvl% %msg%\n"})

		policy := vmath.Exact
		if *fast {
			policy = vmath.Fast
		}
		logrus.Debugf("normalize policy: %s", policy)

		if err := appMain(cmd.OutOrStdout(), args, policy); err != nil {
			logrus.Fatal(err)
		}
	}
	return
}

func appMain(out io.Writer, args []string, policy vmath.NormalizePolicy) error {
	vm_ := vm.NewVM().WithPolicy(policy)

	if len(args) == 0 {
		return vm_.REPL()
	}
	for _, src := range args {
		val, err := vm_.Interpret(src)
		if err != nil {
			return err
		}
		if val != nil {
			fmt.Fprintln(out, val)
		}
	}
	return nil
}
