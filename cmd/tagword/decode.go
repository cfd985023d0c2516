package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chazu/tagword/vm"
)

var decodeCmd = &cobra.Command{
	Use:   "decode word...",
	Short: "Decode immediate words",
	Long: `Decode prints the kind, numeric payload, truthiness and string form of
each word. Words with tag bits 00 are cell references and have no
immediate decoding.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func runDecode(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		w, err := parseWord(arg, sess.codec.WordBits())
		if err != nil {
			return err
		}
		printWord(vm.Immediate(w))
	}
	return nil
}

func printWord(v vm.Immediate) {
	out := sess.out
	if !v.IsImmediate() {
		out.printf("%s\t%s\taddress %#x\n", out.word(uint64(v)), out.kind(vm.KindCell), uint64(v))
		return
	}
	out.printf("%s\t%s\ttag=%s\tnumber=%s\ttruthy=%s\tstring=%q\n",
		out.word(uint64(v)),
		out.kind(v.Kind()),
		v.Tag(),
		vm.FormatNumber(sess.codec.DecodeNumber(v)),
		out.truth(sess.codec.ToBoolean(v)),
		vm.ToStringWith(sess.codec, v),
	)
}

// parseWord parses a word in any base strconv understands (0x, 0b, 0o
// prefixes) and checks it fits the word width.
func parseWord(s string, bits int) (uint64, error) {
	w, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q: %w", s, err)
	}
	if bits < 64 && w>>bits != 0 {
		return 0, fmt.Errorf("word %q does not fit in %d bits", s, bits)
	}
	return w, nil
}
