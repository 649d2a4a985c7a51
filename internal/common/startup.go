package common

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mihaicode/nemolaunch/internal/common/logging"
)

// ConfigureLogging sets up logrus the way long-lived processes log:
// timestamped lines on stdout.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

// ConfigureCommandLineLogging sets up logrus for command line tools,
// where log lines should look like ordinary program output.
func ConfigureCommandLineLogging() {
	commandLineFormatter := new(logging.CommandLineFormatter)
	log.SetFormatter(commandLineFormatter)
	log.SetOutput(os.Stdout)
}
