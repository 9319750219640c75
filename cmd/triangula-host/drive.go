package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"triangula/host/comm"
)

var driveFor time.Duration

var driveCmd = &cobra.Command{
	Use:   "drive <ch0> <ch1> <ch2>",
	Short: "Set the three wheel speeds",
	Long: `Set open-loop speeds for the three wheel channels, each in
[-128, 127]. With --for, the speeds are held for the given duration and
then all channels are stopped; without it the controller keeps the last
command until told otherwise.`,
	Args: cobra.ExactArgs(3),
	RunE: runDrive,
}

func init() {
	rootCmd.AddCommand(driveCmd)
	driveCmd.Flags().DurationVar(&driveFor, "for", 0, "Hold the speeds this long, then stop")
}

func runDrive(cmd *cobra.Command, args []string) error {
	var speeds [3]int8
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 8)
		if err != nil {
			return fmt.Errorf("channel %d speed %q: %w", i, arg, err)
		}
		speeds[i] = int8(v)
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

	client := comm.NewClient(bus)
	if err := client.SetMotorSpeeds(speeds[0], speeds[1], speeds[2]); err != nil {
		return err
	}
	fmt.Printf("speeds set to %d %d %d\n", speeds[0], speeds[1], speeds[2])

	if driveFor > 0 {
		time.Sleep(driveFor)
		if err := client.Stop(); err != nil {
			return err
		}
		fmt.Println("stopped")
	}
	return nil
}
