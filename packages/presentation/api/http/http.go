// HTTP transport shared state
package transport

import "warehouse/packages/common/logger"

var Logger = logger.NewSource("HTTP", logger.Default)
