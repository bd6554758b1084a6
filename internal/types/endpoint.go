// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package types

const (
	EndpointWebSocket = "/ws"
	EndpointProcess   = "/api/v1/process"
)
