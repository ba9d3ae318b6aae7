/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kopfjager/chessforge/util"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the config file (Log.LogLvl)
	LogLevel = 2

	// SearchLogLevel defines the search log level set by default or given by the config file (Log.SearchLogLvl)
	SearchLogLevel = 2

	// TestLogLevel defines the log level used while running tests
	TestLogLevel = 5

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the TOML configuration file at path, falling back to the
// defaults set in this package's init() functions (and printing a one-line
// "using defaults" notice) if the file is missing or malformed - a missing
// config file is not a fatal condition.
func Setup(path string) {
	if initialized {
		return
	}

	if path == "" {
		path = "./config/config.toml"
	}
	resolved, err := util.ResolveFile(path)
	if err != nil {
		resolved = path
	}
	if _, err := toml.DecodeFile(resolved, &Settings); err != nil {
		fmt.Printf("config: using defaults (%v)\n", err)
	}

	setupLogLvl()
	setupSearch()
	setupEval()

	initialized = true
}


