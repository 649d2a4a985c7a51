package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mihaicode/nemolaunch/cmd/nemolaunch/cmd"
	"github.com/mihaicode/nemolaunch/internal/common"
	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
	"github.com/mihaicode/nemolaunch/internal/common/logging"
)

func main() {
	common.ConfigureCommandLineLogging()
	err := cmd.RootCmd().Execute()
	if err != nil {
		logging.WithStacktrace(log.NewEntry(log.StandardLogger()), err).Error(err.Error())
		// The process exit code follows the vendor CLI's exit code whenever
		// the error originated there.
		os.Exit(launcherrors.ExitCodeFromError(err))
	}
}
