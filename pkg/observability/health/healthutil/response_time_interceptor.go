/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration

	samples int64
}

// ResponseTimeInterceptor records the last and the cumulative average response time
// of each check into m, keyed by check name.
func ResponseTimeInterceptor(m map[string]ResponseTimeState) health.Interceptor {
	var mu sync.Mutex

	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()

			s, ok := m[name]
			if !ok || s.samples == 0 {
				m[name] = ResponseTimeState{
					LastResponseTime:    elapsed,
					AverageResponseTime: elapsed,
					samples:             1,
				}

				return result
			}

			s.samples++
			s.LastResponseTime = elapsed
			s.AverageResponseTime += (elapsed - s.AverageResponseTime) / time.Duration(s.samples)

			m[name] = s

			return result
		}
	}
}
