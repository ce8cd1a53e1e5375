package errext

import "github.com/sirupsen/logrus"

// Fprint logs err at error level on logger, attaching any fields Format
// extracts (currently just hint) as structured log fields. It is a
// no-op if err is nil.
func Fprint(logger logrus.FieldLogger, err error) {
	if err == nil {
		return
	}
	msg, fields := Format(err)
	logger.WithFields(fields).Error(msg)
}
