package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"triangula/host/comm"
)

var colourCmd = &cobra.Command{
	Use:   "colour <r> <g> <b>",
	Short: "Set the whole light strip to one colour",
	Args:  cobra.ExactArgs(3),
	RunE:  runColour,
}

func init() {
	rootCmd.AddCommand(colourCmd)
}

func runColour(cmd *cobra.Command, args []string) error {
	var rgb [3]uint8
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return fmt.Errorf("channel %q: %w", arg, err)
		}
		rgb[i] = uint8(v)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bus, closeBus, err := openBus(cfg)
	if err != nil {
		return err
	}
	defer closeBus()

	return comm.NewClient(bus).SetSolidColour(rgb[0], rgb[1], rgb[2])
}
