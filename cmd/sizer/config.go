package main

import (
	"math"

	lander "github.com/ginevracianci/lunar-lander-design-suite"
	"github.com/spf13/viper"
)

// readMission builds the closure parameters from the scenario file. Missing
// optional keys fall back to the baseline defaults.
func readMission() lander.DesignParameters {
	params := lander.NewDesignParameters(
		viper.GetFloat64("mission.initialmass"),
		viper.GetInt("mission.crew"),
		viper.GetInt("mission.duration"),
	)
	if isp := viper.GetFloat64("mission.isp"); isp > 0 {
		params.Isp = isp
	}
	if dv := viper.GetFloat64("mission.dvdescent"); dv > 0 {
		params.ΔvDescent = dv
	}
	if dv := viper.GetFloat64("mission.dvascent"); dv > 0 {
		params.ΔvAscent = dv
	}
	if viper.IsSet("mission.payload") {
		params.PayloadOverride = viper.GetFloat64("mission.payload")
	} else {
		params.PayloadOverride = math.NaN()
	}
	if it := viper.GetInt("solver.maxiterations"); it > 0 {
		params.MaxIterations = it
	}
	if tol := viper.GetFloat64("solver.tolerance"); tol > 0 {
		params.Tolerance = tol
	}
	return params
}

// dispersionConf stores the optional dispersion study settings.
type dispersionConf struct {
	enabled  bool
	samples  int
	σIsp     float64
	σΔv      float64
	σPayload float64
}

func readDispersion() dispersionConf {
	return dispersionConf{
		enabled:  viper.GetBool("dispersion.enabled"),
		samples:  viper.GetInt("dispersion.samples"),
		σIsp:     viper.GetFloat64("dispersion.sigmaisp"),
		σΔv:      viper.GetFloat64("dispersion.sigmadv"),
		σPayload: viper.GetFloat64("dispersion.sigmapayload"),
	}
}
