package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/alem-hub/data-abstraction/internal/domain/contact"
	"github.com/alem-hub/data-abstraction/internal/domain/rational"
	"github.com/alem-hub/data-abstraction/internal/domain/shared"
	"github.com/alem-hub/data-abstraction/pkg/logger"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the examples through every representation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.FromContext(cmd.Context()).Debug("running demo")
			return runDemo(cmd.OutOrStdout(), a.cfg.Conformance.DecimalPrecision)
		},
	}
}

// lastCall only talks to the barrier, so it works with any representation.
func lastCall(mk contact.Constructor[shared.LogTime, shared.CallSign], at shared.LogTime, call shared.CallSign) string {
	foo := mk(at, call)
	return fmt.Sprintf("%s worked at %s", contact.GetID(foo), contact.GetTime(foo))
}

func runDemo(w io.Writer, precision uint32) error {
	at, err := shared.NewLogTime("18:35")
	if err != nil {
		return err
	}
	call, err := shared.NewCallSign("SK7MW")
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Logged contact:")
	for _, rep := range contact.Representations[shared.LogTime, shared.CallSign]() {
		fmt.Fprintf(w, "  %-8s %s\n", rep.Name, lastCall(rep.Make, at, call))
	}

	fmt.Fprintln(w, "Rational:")
	pairs := [][2]int64{{2, 4}, {1, -2}, {0, 5}}
	for _, p := range pairs {
		r, err := rational.New(p[0], p[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  rational(%d, %d) = %s\n", p[0], p[1], r)
	}

	half, err := rational.New(1, 2)
	if err != nil {
		return err
	}
	two, err := rational.New(2, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s * %s = %s\n", half, two, rational.Multiply(half, two))

	third, err := rational.New(1, 3)
	if err != nil {
		return err
	}
	d, _, err := third.Decimal(apd.BaseContext.WithPrecision(precision))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s ~ %s\n", third, d)

	if _, err := rational.New(1, 0); err != nil {
		fmt.Fprintf(w, "  rational(1, 0): %v\n", err)
	}
	return nil
}
