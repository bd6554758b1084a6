// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Command cstring runs one string operation and prints the response as JSON.
//
//	cstring -op split -sep " 1 " "foo 1 bar 1 baz"
//	cstring -addr localhost:7779 -op hash "hello world"
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/KirilStrezikozin/cstring/internal"
	"github.com/KirilStrezikozin/cstring/internal/types"
	"github.com/rs/zerolog"
)

var (
	addr    = flag.String("addr", "", "server address; run locally when empty")
	op      = flag.String("op", string(types.OpHash), "operation to run")
	other   = flag.String("other", "", "second operand of concat, append and equal")
	sep     = flag.String("sep", " ", "separator of split and split_byte")
	from    = flag.Int("from", 0, "start of slice")
	to      = flag.Int("to", -1, "end of slice")
	index   = flag.Int("index", 0, "index of char_at")
	mode    = flag.String("mode", "strict", "growth failure mode of append: strict or silent")
	limit   = flag.Int("limit", 0, "maximum buffer capacity in bytes, 0 for none")
	verbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	req := internal.Request{
		Op:    types.Op(*op),
		Input: strings.Join(flag.Args(), " "),
		Other: *other,
		Sep:   *sep,
		From:  *from,
		To:    to,
		Index: *index,
		Mode:  *mode,
	}

	var (
		resp internal.Response
		err  error
	)
	if *addr != "" {
		resp, err = remote(req, logger)
	} else {
		resp, err = local(req, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("op", *op).Msg("operation failed")
	}

	data, err := json.Marshal(&resp)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to marshal response")
	}
	fmt.Println(string(data))
}

func local(req internal.Request, logger zerolog.Logger) (internal.Response, error) {
	store := internal.NewStore(0, 0, logger)
	defer store.Release()

	processor := internal.NewProcessor(internal.Config{Limit: *limit}, store, logger)
	return processor.Process(req)
}

func remote(req internal.Request, logger zerolog.Logger) (internal.Response, error) {
	var resp internal.Response

	u := url.URL{Scheme: "ws", Host: *addr, Path: types.EndpointWebSocket}
	c := internal.NewWebSocketConn(logger)
	if err := c.Dial(u.String()); err != nil {
		return resp, err
	}
	defer c.Close()

	data, err := json.Marshal(req)
	if err != nil {
		return resp, err
	}
	if err := c.Write(data); err != nil {
		return resp, err
	}

	_, p, err := c.ReadMessage()
	if err != nil {
		return resp, err
	}
	if err := json.Unmarshal(p, &resp); err != nil {
		return resp, fmt.Errorf("error unmarshaling response data: %w", err)
	}
	if resp.Error != "" {
		return resp, fmt.Errorf("server: %s", resp.Error)
	}
	return resp, nil
}
