package logging

import "github.com/kwenta/futures-data-watcher/common/config"

// Variables only are used in logging package.
var (
	logToStdout      = config.GetBool("SERVER_LOG_TO_STDOUT", true)
	logToStackdriver = config.GetBool("SERVER_LOG_TO_STACKDRIVER", false)

	hostName, logName string
)

// Initialize initializes the logging package.
func Initialize(logname string) {
	logName = logname
	hostName = config.GetString("HOSTNAME", "localhost")

	if !logToStackdriver {
		return
	}

	Stackdriver().(*stackdriverOutput).refreshLogger(logName)
}

// Finalize finalizes the logger module.
func Finalize() {
	if stackdriverOut != nil {
		err := stackdriverOut.client.Close()
		if err != nil {
			panic(err)
		}
		stackdriverOut = nil
	}
}
