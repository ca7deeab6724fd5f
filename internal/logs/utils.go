package logs

import log "github.com/sirupsen/logrus"

// ConfigLogLevelToLevel maps the numeric level of the config file to a logrus level
func ConfigLogLevelToLevel(level int) log.Level {
	switch level {
	case 1:
		return log.InfoLevel
	case 2:
		return log.ErrorLevel
	case 3:
		return log.WarnLevel
	case 4:
		return log.DebugLevel
	default:
		return log.ErrorLevel
	}
}
