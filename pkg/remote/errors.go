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

import "errors"

var (
	// ErrMalformedResponse is returned when the gateway answers with a body
	// that is not a JSON object. It is never retried.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnexpectedStatus wraps non-2xx HTTP responses.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrUnsuccessful marks a transport success whose payload lacks success:true.
	ErrUnsuccessful = errors.New("remote reported failure")
	// ErrClientClosed is returned by calls made after Close.
	ErrClientClosed = errors.New("remote client closed")
)
