package logging

import "github.com/sirupsen/logrus"

var (
	logger *logrus.Entry
)

type Fields = logrus.Fields

func init() {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
}

func SetLevel(l logrus.Level) {
	logger.Logger.SetLevel(l)
}

func Entry() *logrus.Entry {
	return logger
}

// Component returns the shared entry tagged with the emitting component
func Component(name string) *logrus.Entry {
	return logger.WithField("component", name)
}

func WithError(e error) *logrus.Entry {
	return logger.WithError(e)
}
