// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

// LineWriter is where activity output goes.
type LineWriter interface {
	// WriteLine writes one line followed by a newline.
	WriteLine(line string) error

	// Printf formats according to a format specifier and writes the result
	// as one line.
	Printf(format string, args ...any) error

	// Close releases any resources held by the writer.
	Close() error
}
