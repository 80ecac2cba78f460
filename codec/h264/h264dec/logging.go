/*
DESCRIPTION
  logging.go provides the package-level structured logger used to report
  recoverable anomalies that aren't fatal enough to return as an error;
  the only one logged is a malformed RBSP stop bit, from MoreRBSPData. Defaults to a no-op
  logger; callers that want diagnostics call SetLogger.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetLogger installs l as the package-level logger. Passing nil restores
// the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}
