package parser

import "warehouse/packages/common/logger"

var Log = logger.NewSource("PARSER", logger.Default)
