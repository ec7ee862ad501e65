package logging

import "github.com/sirupsen/logrus"

// Logrus адаптер над логгером logrus, все события пишутся на уровне Debug.
func Logrus(l logrus.FieldLogger) Logger {
	return logrusLogger{l: l}
}

type logrusLogger struct {
	l logrus.FieldLogger
}

func (l logrusLogger) BufferResized(from, to int) {
	l.l.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Debug("buffer resized")
}

func (l logrusLogger) ListEntryDeleted(pos int) {
	l.l.WithField("position", pos).Debug("list entry deleted during traversal")
}
