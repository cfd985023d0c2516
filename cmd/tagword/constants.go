package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/tagword/vm"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the canonical singleton immediates",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		s := sess.codec.Singletons()
		for _, c := range []struct {
			name string
			v    vm.Immediate
		}{
			{"true", s.True},
			{"false", s.False},
			{"NaN", s.NaN},
			{"undefined", s.Undefined},
			{"null", s.Null},
		} {
			sess.out.printf("%-10s", c.name)
			printWord(c.v)
		}
	},
}
