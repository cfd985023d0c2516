package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/tagword/vm"
	"github.com/chazu/tagword/vm/wire"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Read and write CBOR constant pools",
	Long: `Constant pools always use the word width of this build, regardless of
--width, because immediates are stored as raw words.`,
}

var poolWriteCmd = &cobra.Command{
	Use:   "write file number...",
	Short: "Write numbers to a constant pool",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPoolWrite,
}

var poolReadCmd = &cobra.Command{
	Use:   "read file",
	Short: "List the constants in a pool",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoolRead,
}

func init() {
	poolCmd.AddCommand(poolWriteCmd)
	poolCmd.AddCommand(poolReadCmd)
}

func runPoolWrite(_ *cobra.Command, args []string) error {
	warnWidth()

	heap := vm.NewHeap()
	values := make([]vm.Value, 0, len(args)-1)
	for _, arg := range args[1:] {
		d, err := parseNumber(arg)
		if err != nil {
			return err
		}
		values = append(values, vm.NumberValue(heap, d))
	}

	pool, err := wire.FromValues(values)
	if err != nil {
		return err
	}
	data, err := wire.Marshal(pool)
	if err != nil {
		return fmt.Errorf("encode pool: %w", err)
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}
	sess.log.Infof("wrote %d constants (%d boxed) to %s", len(values), heap.Stats().Live, args[0])
	return nil
}

func runPoolRead(_ *cobra.Command, args []string) error {
	warnWidth()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read pool: %w", err)
	}
	pool, err := wire.Unmarshal(data)
	if err != nil {
		return err
	}

	heap := vm.NewHeap()
	out := newPrinter(sess.out.w, vm.WordBits, sess.cfg.Output.Format, sess.out.color)
	for i, v := range pool.Values(heap) {
		if v.IsCell() {
			out.printf("%d\t%s\t%s\n", i, out.boxed.Sprint("boxed"), v.ToString())
			continue
		}
		imm := v.Immediate()
		out.printf("%d\t%s\t%s\t%s\n", i, out.word(uint64(imm)), out.kind(imm.Kind()), v.ToString())
	}
	return nil
}

func warnWidth() {
	if sess.codec.WordBits() != vm.WordBits {
		sess.log.Warningf("pools use the build's %d-bit words; ignoring --width %d", vm.WordBits, sess.codec.WordBits())
	}
}
