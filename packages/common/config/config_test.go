package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSampleConfig(t *testing.T) {
	raw, err := os.ReadFile("../../../" + DefaultPath)
	require.NoError(t, err)

	c, err := parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "warehouse", c.dbConfig.Name)
	assert.Equal(t, 5*time.Second, c.dbConfig.QueryTimeout())
	assert.Equal(t, "3000", c.httpServerConfig.Port)
	assert.Equal(t, 5*time.Minute, c.cacheConfig.TTL())
	assert.Equal(t, "Europe/Riga", c.queryConfig.Location().String())
}

func TestParseInvalidConfig(t *testing.T) {
	valid := `
db-name: warehouse
db-employee-collection: employees
db-order-collection: orders
db-product-collection: products
db-query-timeout: 5s
http-port: "3000"
http-allowed-origins: ["*"]
http-body-limit: 1M
http-search-rate-limit: 1
http-search-rate-burst: 1
cache-socket-timeout: 1s
cache-operation-timeout: 1s
cache-ttl: 1m
query-time-zone: UTC
debug-mode: false
show-logs: false
trace-logs: false
logs-dir: ./logs
`
	_, err := parse([]byte(valid))
	require.NoError(t, err)

	cases := map[string]string{
		"bad duration":  "db-query-timeout: 5s",
		"bad time zone": "query-time-zone: UTC",
		"no origins":    `http-allowed-origins: ["*"]`,
	}
	replacements := map[string]string{
		"bad duration":  "db-query-timeout: soon",
		"bad time zone": "query-time-zone: Mars/Olympus",
		"no origins":    "http-allowed-origins: []",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			raw := strings.Replace(valid, line, replacements[name], 1)
			_, err := parse([]byte(raw))
			assert.Error(t, err)
		})
	}

	_, err = parse([]byte("db-name: [unclosed"))
	assert.Error(t, err)
}
