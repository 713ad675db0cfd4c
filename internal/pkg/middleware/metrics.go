// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedPath 没有匹配到路由的请求统一归到这里，避免标签爆炸
const unmatchedPath = "unmatched"

type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return NewMetricsBuilderWith(prometheus.DefaultRegisterer)
}

func NewMetricsBuilderWith(reg prometheus.Registerer) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	durationVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jobboard",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		// 检索接口要等模型评估，耗时跨度比较大
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
	}, labels)
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobboard",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	reg.MustRegister(durationVec, counterVec)
	return &MetricsBuilder{
		durationVec: durationVec,
		counterVec:  counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.durationVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
