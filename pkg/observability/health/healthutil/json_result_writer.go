/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type healthResponse struct {
	Status     health.AvailabilityStatus  `json:"status"`
	Components map[string]componentResult `json:"components,omitempty"`
}

type componentResult struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter writes the aggregated health status as JSON, annotating each
// component with the response times recorded by ResponseTimeInterceptor.
type JSONResultWriter struct {
	responseTimes map[string]ResponseTimeState
}

func NewJSONResultWriter(m map[string]ResponseTimeState) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: m,
	}
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	r := &healthResponse{Status: result.Status}

	if result.Details != nil {
		r.Components = map[string]componentResult{}

		for name, cr := range *result.Details {
			if t, ok := rw.responseTimes[name]; ok {
				r.Components[name] = componentResult{
					CheckResult:         cr,
					LastResponseTime:    t.LastResponseTime.String(),
					AverageResponseTime: t.AverageResponseTime.String(),
				}
			} else {
				r.Components[name] = componentResult{
					CheckResult: cr,
				}
			}
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
