package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	lander "github.com/ginevracianci/lunar-lander-design-suite"
	"github.com/spf13/viper"
)

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "sizer scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "print configuration while loading")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	prefix := viper.GetString("general.fileprefix")
	if len(prefix) == 0 {
		prefix = scenario
	}
	params := readMission()
	if verbose {
		log.Printf("[conf] file prefix: %s\n", prefix)
		log.Printf("[conf] initial mass: %.0f kg, crew: %d, duration: %d days\n", params.InitialTotalMass, params.CrewCount, params.MissionDuration)
		log.Printf("[conf] Δv: %.1f m/s down / %.1f m/s up, isp: %.1f s\n", params.ΔvDescent, params.ΔvAscent, params.Isp)
		log.Printf("[conf] solver: %d iterations max, tolerance %.1f kg\n", params.MaxIterations, params.Tolerance)
	}

	designer, err := lander.NewDesigner(params)
	if err != nil {
		log.Fatalf("invalid scenario: %s", err)
	}
	rslt, err := designer.Run()
	if err != nil {
		log.Fatalf("closure failed: %s", err)
	}
	fmt.Print(rslt.Report())

	if viper.GetBool("output.history") {
		if err := lander.ExportHistory(prefix, designer.History()); err != nil {
			log.Fatalf("could not export history: %s", err)
		}
	}
	if viper.GetBool("output.fits") {
		if err := lander.ExportFitDiagnostics(prefix); err != nil {
			log.Fatalf("could not export fit diagnostics: %s", err)
		}
	}

	if disp := readDispersion(); disp.enabled {
		src := rand.New(rand.NewSource(time.Now().UnixNano()))
		study, err := lander.NewDispersion(params, disp.σIsp, disp.σΔv, disp.σPayload, disp.samples, src)
		if err != nil {
			log.Fatalf("invalid dispersion settings: %s", err)
		}
		summary, err := study.Run()
		if err != nil {
			log.Fatalf("dispersion failed: %s", err)
		}
		fmt.Println(summary)
	}
}
