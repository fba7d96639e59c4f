package utilities

import "github.com/edmundcwm/nerbcrmwp/pkg/logger"

func FailOnError(err error, msg string) {
	if err != nil {
		logger.Default().Fatal(err, msg)
	}
}
