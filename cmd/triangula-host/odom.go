package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"triangula/host/comm"
	"triangula/host/telemetry"
)

var (
	odomInterval time.Duration
	odomCount    int
	odomPublish  bool
)

var odomCmd = &cobra.Command{
	Use:   "odom",
	Short: "Poll the wheel encoders and print odometry",
	Long: `Poll the encoder counters at a fixed interval, printing the raw
readings, the per-poll deltas and the accumulated signed travel per
wheel. Deltas are wrap-safe as long as no wheel moves more than 32767
ticks between polls.

With --publish, each sample is also sent to the configured MQTT broker.`,
	RunE: runOdom,
}

func init() {
	rootCmd.AddCommand(odomCmd)
	odomCmd.Flags().DurationVar(&odomInterval, "interval", 200*time.Millisecond, "Poll interval")
	odomCmd.Flags().IntVar(&odomCount, "count", 0, "Stop after this many polls (0 = forever)")
	odomCmd.Flags().BoolVar(&odomPublish, "publish", false, "Publish samples to MQTT")
}

func runOdom(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bus, closeBus, err := openBus(cfg)
	if err != nil {
		return err
	}
	defer closeBus()

	var pub *telemetry.Publisher
	if odomPublish {
		pub, err = telemetry.Connect(telemetry.Config{
			BrokerURL: cfg.MQTT.Broker,
			ClientID:  cfg.MQTT.ClientID,
			Topic:     cfg.MQTT.Topic,
		})
		if err != nil {
			return err
		}
		defer pub.Close()
	}

	client := comm.NewClient(bus)
	var odo comm.Odometry
	pace := comm.NewIntervalCheck(odomInterval)

	for polls := 0; odomCount == 0 || polls < odomCount; polls++ {
		pace.Sleep()
		enc, err := client.ReadEncoders()
		if err != nil {
			return err
		}
		dA, dB, dC := odo.Update(enc)
		tA, tB, tC := odo.Travel()
		fmt.Printf("raw A=%5d B=%5d C=%5d  delta %+5d %+5d %+5d  travel %+8d %+8d %+8d\n",
			enc.A, enc.B, enc.C, dA, dB, dC, tA, tB, tC)

		if pub != nil {
			sample := telemetry.Sample{
				Time:   time.Now(),
				Raw:    [3]uint16{enc.A, enc.B, enc.C},
				Delta:  [3]int16{dA, dB, dC},
				Travel: [3]int64{tA, tB, tC},
			}
			if err := pub.Publish(sample); err != nil {
				return err
			}
		}
	}
	return nil
}
