package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	busKind    string
	busDevice  string
)

var rootCmd = &cobra.Command{
	Use:   "triangula-host",
	Short: "Drive the Triangula wheel controller over its bus",
	Long: `triangula-host talks to the three-wheel controller as a bus master:
open-loop motor speeds, light strip colours and wrap-safe encoder
odometry.

Bus access modes:
  i2c:    --bus i2c --device /dev/i2c-1       (on-robot, via i2c-dev)
  serial: --bus serial --device /dev/ttyUSB0  (bench, via UART bridge)

A YAML config file (--config) provides the same settings plus the MQTT
broker used by 'odom --publish'; flags override the file.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&busKind, "bus", "", "Bus kind: i2c or serial")
	rootCmd.PersistentFlags().StringVarP(&busDevice, "device", "d", "", "Bus device path")
}
