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

// Package output writes activity lines to standard output or any io.Writer.
//
// The primary type is Writer, which serializes writes and counts the lines
// it has written. Each line is written as soon as it is produced so the user
// sees activity as it is formatted.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout)
//	defer w.Close()
//
//	if err := w.WriteLine("Starred octocat/Hello-World"); err != nil {
//	    return err
//	}
//
//	logger.Info("done", zap.Int("lines", w.Count()))
package output
