package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chazu/tagword/vm"
)

var encodeCmd = &cobra.Command{
	Use:   "encode number...",
	Short: "Encode numbers as immediate words",
	Long: `Encode packs each number into a numeric immediate. Numbers that cannot
be represented without losing bits are reported as "boxed": the machine
would allocate them on the heap instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func runEncode(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		d, err := parseNumber(arg)
		if err != nil {
			return err
		}
		v, ok := sess.codec.EncodeNumber(d)
		if !ok {
			sess.out.printf("%s\t%s\n", arg, sess.out.boxed.Sprint("boxed"))
			continue
		}
		sess.out.printf("%s\t%s\t%s\n", arg, sess.out.word(uint64(v)), sess.out.kind(v.Kind()))
	}
	return nil
}

// parseNumber accepts Go float syntax plus the language spellings of the
// infinities. NaN parses to the canonical NaN the machine produces, not to
// Go's math.NaN, whose low payload bit is set.
func parseNumber(s string) (float64, error) {
	switch s {
	case "NaN":
		return vm.Wide.DecodeNumber(vm.WideNaN), nil
	case "Infinity", "+Infinity":
		s = "+Inf"
	case "-Infinity":
		s = "-Inf"
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}
