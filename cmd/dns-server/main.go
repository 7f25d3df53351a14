// SPDX-License-Identifier: GPL-3.0-or-later

// Command dns-server runs a small authoritative DNS server over
// UDP, answering A queries from a built-in name database.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bassosimone/minidns"
	"go.uber.org/zap"
)

func main() {
	port := flag.Int("port", 5353, "UDP port to listen on")
	address := flag.String("address", "127.0.0.1", "address to listen on")
	verbose := flag.Bool("verbose", false, "log per-packet details")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	db := minidns.NewDatabase()
	for name, addr := range db.Records() {
		logger.Info("loaded record", zap.String("name", name), zap.Stringer("addr", addr))
	}

	srv, err := minidns.NewServer(fmt.Sprintf("%s:%d", *address, *port), db, logger)
	if err != nil {
		logger.Fatal("cannot start server", zap.Error(err))
	}
	go srv.Serve()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	<-sigch

	logger.Info("shutting down")
	srv.Stop()
}

// newLogger builds a console logger: Info level by default, Debug
// when verbose.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.Must(cfg.Build())
}
