// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/KirilStrezikozin/cstring/internal"
	"github.com/KirilStrezikozin/cstring/internal/handlers"
	"github.com/KirilStrezikozin/cstring/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

var (
	addr       = flag.String("addr", "localhost:7779", "http service address")
	limit      = flag.Int("limit", 1<<20, "maximum buffer capacity in bytes, 0 for none")
	storeLimit = flag.Int("store-limit", 1<<16, "maximum number of interned strings, 0 for none")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().
		Timestamp().
		Logger()

	store := internal.NewStore(64, *storeLimit, logger)

	processor := internal.NewProcessor(internal.Config{Limit: *limit}, store, logger)
	h := handlers.New(logger, processor)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(types.EndpointWebSocket, h.WebSocket)
	r.Post(types.EndpointProcess, h.Process)

	logger.Info().Str("addr", *addr).Msg("listening")
	server := &http.Server{Addr: *addr, Handler: r, WriteTimeout: 10 * time.Second, ReadTimeout: 10 * time.Second}
	logger.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
