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

package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopfjager/chessforge/attacks"
	"github.com/kopfjager/chessforge/config"
	"github.com/kopfjager/chessforge/logging"
	"github.com/kopfjager/chessforge/movegen"
	"github.com/kopfjager/chessforge/position"
	"github.com/kopfjager/chessforge/uci"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	perftDepth := flag.Int("perft", 0, "run perft on the given position to the given depth and exit\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen to use with -perft")
	doProfile := flag.Bool("profile", false, "capture a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)
	log := logging.GetLog()

	attacks.Init()
	attacks.Ready()

	if *perftDepth != 0 {
		pos, err := position.FromFEN(*fen)
		if err != nil {
			fmt.Println("invalid fen:", err)
			return
		}
		for depth := 1; depth <= *perftDepth; depth++ {
			nodes := movegen.Perft(pos, depth)
			out.Printf("perft(%d) = %d\n", depth, nodes)
		}
		return
	}

	log.Info("chessforge starting, waiting for UCI commands")
	h := uci.NewHandler()
	h.Loop()
}
