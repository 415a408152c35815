package httpmiddleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "eventdesk_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

func init() {
	prometheus.MustRegister(requestsTotal)
}

// Metrics counts each request against its matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
