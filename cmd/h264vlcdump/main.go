/*
DESCRIPTION
  h264vlcdump reads a raw RBSP byte buffer from a file and dumps the
  sequence of ue(v) values it decodes from the start of the buffer,
  stopping at the trailing stop bit. It exists to exercise the bitstream
  parsing core end to end over a real file, the way a developer would
  while chasing a desync bug.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/ausocean/h264vlc/bits"
	"github.com/ausocean/h264vlc/codec/h264/h264dec"
)

func main() {
	path := flag.String("in", "", "path to a raw RBSP byte buffer")
	tracePath := flag.String("trace", "", "optional path to write a per-element trace log to")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: h264vlcdump -in <file> [-trace <file>]")
		os.Exit(2)
	}

	if err := run(*path, *tracePath); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "h264vlcdump"))
		os.Exit(1)
	}
}

func run(path, tracePath string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading input file")
	}
	if len(buf) == 0 {
		return errors.New("input file is empty")
	}

	c := bits.NewCursor(buf)
	r := h264dec.NewReader(c)
	if tracePath != "" {
		r.SetTracer(h264dec.NewFileTracer(tracePath))
	}

	for i := 0; h264dec.MoreRBSPData(c); i++ {
		v, err := r.UE(fmt.Sprintf("element_%d", i))
		if err != nil {
			return errors.Wrapf(err, "decoding element %d at bit offset %d", i, c.BitOffset())
		}
		fmt.Printf("element %d: value=%d bit_offset=%d\n", i, v, c.BitOffset())
	}
	fmt.Printf("done: %d bits consumed, %d bytes in buffer\n", r.BitsConsumed(), len(buf))
	return nil
}
