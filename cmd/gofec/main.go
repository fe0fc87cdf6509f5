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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/xtaci/gofec/fec"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "gofec"
	myApp.Usage = "forward error correction codec (RS / LDPC / BCH)"
	myApp.Version = VERSION
	myApp.Commands = []cli.Command{
		{
			Name:  "selftest",
			Usage: "run the built-in round-trip scenarios for every family and report pass/fail",
			Action: func(c *cli.Context) error {
				return runSelftest()
			},
		},
		{
			Name:  "version",
			Usage: "print the library version id and build time",
			Action: func(c *cli.Context) error {
				fmt.Printf("version_id=%d buildtime=%d\n", fec.VersionID(), fec.BuildTime())
				return nil
			},
		},
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type scenario struct {
	name string
	run  func() error
}

func runSelftest() error {
	scenarios := []scenario{
		{"S1 rs-no-op", scenarioRSNoOp},
		{"S2 rs-correct", scenarioRSCorrect},
		{"S3 rs-erasure", scenarioRSErasure},
		{"S4 bch-single-bit", scenarioBCHSingleBit},
		{"S5 bch-double-bit", scenarioBCHDoubleBit},
		{"S6 ldpc-round-trip", scenarioLDPCRoundTrip},
		{"S7 ldpc-correction", scenarioLDPCCorrection},
		{"S8 ldpc-burst", scenarioLDPCBurst},
	}

	failed := 0
	for _, s := range scenarios {
		if err := s.run(); err != nil {
			color.Red("FAIL %-20s %v", s.name, err)
			failed++
			continue
		}
		color.Green("PASS %-20s", s.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}
