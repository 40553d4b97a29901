package encoding

import "warehouse/packages/common/logger"

var Log = logger.NewSource("ENCODING", logger.Default)
