// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/np/cmd/np/commands"
	"github.com/walteh/np/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	// Set up logger, user facing output goes to stdout
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	os.Exit(run(ctx))
}

// run executes the command tree and maps the outcome to an exit code
func run(ctx context.Context) int {
	rootCmd := newRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		log.New(ctx, rootCmd.ErrOrStderr()).LogError(err)
		return 1
	}
	return 0
}
