// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package buildinfo exposes the version surface the front door reports
// through fec.VersionID and fec.BuildTime: a numeric version identifier
// and an optional build timestamp, independent of the library's actual
// codec state.
package buildinfo

import "strconv"

// VersionID is bumped for every release with externally visible changes.
// 10000000 mirrors the first stable release line this module's
// ancestor carried.
const VersionID uint32 = 10000000

// buildTime is set via -ldflags "-X ...buildinfo.buildTime=..." at
// release build time, as a decimal string (-X only sets string
// variables); it is empty for a plain `go build`.
var buildTime string

// BuildTime returns the build timestamp baked in at link time, or 0 if
// none was set or it is not a decimal uint32.
func BuildTime() uint32 {
	v, err := strconv.ParseUint(buildTime, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}
