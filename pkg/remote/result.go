/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package remote

// Result is the outcome of a gateway call. Exactly one of Data or Err is set.
type Result struct {
	Data map[string]interface{}
	Err  error
}

// OK reports transport-level success.
func (r Result) OK() bool {
	return r.Err == nil
}

// Succeeded reports transport success plus success:true in the payload.
func (r Result) Succeeded() bool {
	if r.Err != nil {
		return false
	}

	ok, _ := r.Data["success"].(bool)

	return ok
}

// String returns a string field or "".
func (r Result) String(key string) string {
	s, _ := r.Data[key].(string)

	return s
}

// Map returns a nested object field or nil.
func (r Result) Map(key string) map[string]interface{} {
	m, _ := r.Data[key].(map[string]interface{})

	return m
}

// Slice returns an array field or nil.
func (r Result) Slice(key string) []interface{} {
	s, _ := r.Data[key].([]interface{})

	return s
}

// Int returns a numeric field truncated to int, or 0.
func (r Result) Int(key string) int {
	return toInt(r.Data[key])
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}

// ErrorMessage is Err.Error() or "".
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}

	return r.Err.Error()
}
