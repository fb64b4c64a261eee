package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `Voo pricing service

Usage:
  fare [flags]

Flags:
  -config-path string   path to the config yaml file (default "config.yaml")
  -help                 show this message

Configuration is read from the YAML file and may be overridden through
environment variables (SERVER_PORT, ARTIFACTS_DIR, RATES_BASE_FARE, ...).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig dumps the effective configuration to stdout on startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("server: port=%s\n", cfg.Server.Port)
	fmt.Printf("artifacts: dir=%s model=%s cab_encoder=%s ride_encoder=%s\n",
		cfg.Artifacts.Dir, cfg.Artifacts.Model, cfg.Artifacts.CabEncoder, cfg.Artifacts.RideEncoder)
	fmt.Printf("rates: booking=%.2f base=%.2f waiting=%.2f distance=%.2f minimum=%.2f\n",
		cfg.Rates.BookingFee, cfg.Rates.BaseFare, cfg.Rates.WaitingRate, cfg.Rates.DistanceRate, cfg.Rates.MinimumFare)
}
