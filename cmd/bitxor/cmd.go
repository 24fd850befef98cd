// Package bitxor implements the bitxor command line tool, a thin call
// site over the library: it decodes ASCII-hex operands into buffers,
// combines them, and dumps the result.
package bitxor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oddbits/bitkit/combine"
	"github.com/oddbits/bitkit/config"
	"github.com/oddbits/bitkit/hexcodec"
	"github.com/oddbits/bitkit/shared"
)

// Cmd is the root command, wired for execution by the module's main.
var Cmd = &cobra.Command{
	Use:           "bitxor",
	Short:         "bit buffer hex utilities",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var xorCmd = &cobra.Command{
	Use:   "xor <hex-a> <hex-b>",
	Short: "XOR two equal-length hex strings and dump the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := initialize()
		if err != nil {
			return err
		}
		return runXor(cmd, cfg, logger, args[0], args[1])
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "decode a hex string and dump the bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := initialize()
		if err != nil {
			return err
		}
		return runDecode(cmd, cfg, logger, args[0])
	},
}

func init() {
	setFlags(Cmd.PersistentFlags(), config.DefaultConfig())
	Cmd.AddCommand(xorCmd, decodeCmd)
}

func initialize() (*config.Config, shared.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(logLevelName)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func runXor(cmd *cobra.Command, cfg *config.Config, logger shared.Logger, textA, textB string) error {
	for _, text := range []string{textA, textB} {
		if err := checkInputSize(cfg, text); err != nil {
			return err
		}
	}

	bx, err := hexcodec.Decode(textA)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	by, err := hexcodec.Decode(textB)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	logger.Debug("decoded operands: %d and %d bits", bx.BitLen(), by.BitLen())

	bz, err := combine.Xor(bx, by)
	if err != nil {
		return err
	}
	logger.Debug("combined result: %s", hexcodec.Encode(bz))

	if err := hexcodec.NewDumper(cfg).Dump(cmd.OutOrStdout(), bz); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

func runDecode(cmd *cobra.Command, cfg *config.Config, logger shared.Logger, text string) error {
	if err := checkInputSize(cfg, text); err != nil {
		return err
	}

	buf, err := hexcodec.Decode(text)
	if err != nil {
		return err
	}
	logger.Debug("decoded %d bits", buf.BitLen())

	if err := hexcodec.NewDumper(cfg).Dump(cmd.OutOrStdout(), buf); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

// checkInputSize rejects operands before any allocation, applying the
// configured ceiling rather than the library's hard one.
func checkInputSize(cfg *config.Config, text string) error {
	nbits := uint((len(text)+1)/2) * shared.BitsPerByte
	if nbits > cfg.MaxBufferBits {
		return fmt.Errorf("%w: input needs %d bits, ceiling is %d",
			shared.ErrAllocation, nbits, cfg.MaxBufferBits)
	}
	return nil
}
