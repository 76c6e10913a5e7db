// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command kfut decodes kube API payloads with the client's decoding path.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"code.hybscloud.com/kfut/internal/cli"
)

func main() {
	// Load .env if present; a missing file is not an error.
	_ = godotenv.Load()

	root := cli.NewRootCmd(cli.DefaultEnv())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
