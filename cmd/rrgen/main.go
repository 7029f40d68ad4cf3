// rrgen 随机生成RoadRunner信号灯元数据（.rrdata.xml）与配套的OpenDRIVE信号映射（.xodr）
package main

import (
	"flag"
	"os"
	"path/filepath"

	"git.fiblab.net/general/common/v2/fsutil"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/metadata/synthetic"
	"github.com/OpenHUTB/carla-0.9.14/utils/randengine"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	defaults = synthetic.DefaultOptions()

	out        = pflag.StringP("out", "o", "data/", "output directory")
	name       = pflag.String("name", "generated", "output file name without extension")
	seed       = pflag.Uint64("seed", 0, "random seed")
	version    = pflag.Int("version", metadata.PluginVersion, "metadata version to write (2 writes the combined layout)")
	junctions  = pflag.Int("junctions", defaults.Junctions, "number of junctions")
	minSignals = pflag.Int("min-signals", defaults.MinSignals, "minimum signals per junction")
	maxSignals = pflag.Int("max-signals", defaults.MaxSignals, "maximum signals per junction")
	greenTime  = pflag.Float64("green", defaults.GreenTime, "base green interval time in seconds")
	yellowTime = pflag.Float64("yellow", defaults.YellowTime, "yellow interval time in seconds")
	arrowShare = pflag.Float64("arrow-share", defaults.ArrowShare, "share of signals using the arrow asset")
	allRed     = pflag.Float64("all-red-chance", defaults.AllRedChance, "probability of an all-red clearance interval per phase")
	allRedTime = pflag.Float64("all-red", defaults.AllRedTime, "all-red interval time in seconds")

	log = logrus.WithField("module", "rrgen")
)

func write(file string, data []byte, err error) {
	if err != nil {
		log.Fatalf("failed to generate %s: %v", file, err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", file, err)
	}
	log.Infof("write %s (%d bytes)", file, len(data))
}

func main() {
	// rand.seed_offset
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if *minSignals < 1 || *maxSignals < *minSignals {
		log.Fatalf("need 1 <= min-signals <= max-signals, got %d and %d", *minSignals, *maxSignals)
	}

	res := synthetic.Generate(randengine.New(*seed), synthetic.Options{
		Junctions:    *junctions,
		MinSignals:   *minSignals,
		MaxSignals:   *maxSignals,
		GreenTime:    *greenTime,
		YellowTime:   *yellowTime,
		ArrowShare:   *arrowShare,
		AllRedChance: *allRed,
		AllRedTime:   *allRedTime,
		OpenDriveID0: defaults.OpenDriveID0,
	})

	fsutil.MustHaveDir(*out)
	base := filepath.Join(*out, *name)
	data, err := metadata.Write(res.Metadata, *version)
	write(base+".rrdata.xml", data, err)
	data, err = metadata.WriteOpenDrive(res.Roads)
	write(base+".xodr", data, err)
}
