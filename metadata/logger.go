package metadata

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "metadata")
